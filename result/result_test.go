package result

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gilliss/AttenCalc/atten"
)

func TestNewEmptyResult(t *testing.T) {
	res := NewEmptyResult()

	assert.Equal(t, 1.0, res.InitialIntensity)
	assert.Equal(t, 1.0, res.FinalIntensity)
	assert.Empty(t, res.Layers)
}

func TestAddLayer(t *testing.T) {
	res := NewEmptyResult()
	res.AddLayer(atten.Transmission{
		Material:       "Lead",
		ThicknessCm:    1.0,
		Density:        11.35,
		EnergyMeVUsed:  0.600,
		MassAttenCoeff: 0.1130,
		Fraction:       0.2774,
	}, 0.2774)

	require.Len(t, res.Layers, 1)
	assert.Equal(t, "Lead", res.Layers[0].Material)
	assert.Equal(t, 0.2774, res.Layers[0].TransmittedFraction)
	assert.Equal(t, 0.2774, res.Layers[0].RemainingIntensity)
}

func TestResultMarshal(t *testing.T) {
	res := NewEmptyResult()
	res.EnergyKeV = 662

	marshaled, err := json.Marshal(res)
	require.NoError(t, err)

	expected := `{
	"initialIntensity": 1,
	"finalIntensity": 1,
	"energyKeV": 662,
	"layers": []
}`
	assert.JSONEq(t, expected, string(marshaled))
}

func TestReport(t *testing.T) {
	res := NewEmptyResult()
	res.EnergyKeV = 662
	res.AddLayer(atten.Transmission{
		Material:       "Lead",
		ThicknessCm:    1.0,
		Density:        11.35,
		EnergyMeVUsed:  0.600,
		MassAttenCoeff: 0.1130,
		Fraction:       0.2774,
	}, 0.2774)
	res.FinalIntensity = 0.2774

	report := res.Report()
	assert.Contains(t, report, "Gamma-ray energy: 662 keV")
	assert.Contains(t, report, "Lead")
	assert.Contains(t, report, "11.35")
	assert.Contains(t, report, "Remaining I = 0.2774, I_init = 1")
}
