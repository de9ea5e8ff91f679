package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	conf "github.com/gilliss/AttenCalc/config"
	"github.com/gilliss/AttenCalc/result"
)

func testRequest(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := NewRouter(&conf.Config{DataDir: "testdata"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, strings.NewReader(body)))
	return recorder
}

func TestAttenuate(t *testing.T) {
	body := `{
		"energyKeV": 662,
		"layers": [{"material": "Lead", "thicknessCm": 1.0}]
	}`

	recorder := testRequest(t, http.MethodPost, "/attenuate", body)
	require.Equal(t, http.StatusOK, recorder.Code)

	res := result.Result{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

	assert.Equal(t, 1.0, res.InitialIntensity)
	assert.InDelta(t, 0.2774, res.FinalIntensity, 0.0001)
	require.Len(t, res.Layers, 1)
	assert.Equal(t, 0.600, res.Layers[0].EnergyMeVUsed)
}

func TestAttenuateNoLayers(t *testing.T) {
	recorder := testRequest(t, http.MethodPost, "/attenuate", `{"energyKeV": 662, "layers": []}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	res := result.Result{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
	assert.Equal(t, 1.0, res.FinalIntensity)
}

func TestAttenuateUnknownMaterial(t *testing.T) {
	body := `{
		"energyKeV": 662,
		"layers": [{"material": "Unobtainium", "thicknessCm": 1.0}]
	}`

	recorder := testRequest(t, http.MethodPost, "/attenuate", body)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAttenuateNegativeThickness(t *testing.T) {
	body := `{
		"energyKeV": 662,
		"layers": [{"material": "Lead", "thicknessCm": -1.0}]
	}`

	recorder := testRequest(t, http.MethodPost, "/attenuate", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAttenuateMalformedBody(t *testing.T) {
	recorder := testRequest(t, http.MethodPost, "/attenuate", `{"energyKeV": "high"`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestMaterials(t *testing.T) {
	recorder := testRequest(t, http.MethodGet, "/materials", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	listing := map[string][]string{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &listing))
	assert.Contains(t, listing["materials"], "Lead")
}
