package web

import (
	"fmt"
	"net/http"

	"github.com/gilliss/AttenCalc/errors"
	"github.com/gilliss/AttenCalc/result"
	"github.com/gilliss/AttenCalc/validate"
)

// AttenuateRequest is the body of POST /attenuate.
type AttenuateRequest struct {
	EnergyKeV float64        `json:"energyKeV"`
	Layers    []LayerRequest `json:"layers"`
}

// LayerRequest is one shielding layer of an AttenuateRequest.
type LayerRequest struct {
	Material    string  `json:"material"`
	ThicknessCm float64 `json:"thicknessCm"`
}

func (h *handler) attenuateHandler(w http.ResponseWriter, r *http.Request) {
	request := AttenuateRequest{}
	if decodeErr := decodeJSONRequest(r, &request); decodeErr != nil {
		handleRequestErr(w, fmt.Errorf("%w: %s", errors.ErrMalformed, decodeErr.Error()))
		return
	}

	if !validate.NonNegative(request.EnergyKeV) {
		handleRequestErr(w, fmt.Errorf("%w: energyKeV must be non-negative", errors.ErrMalformed))
		return
	}

	res := result.NewEmptyResult()
	res.EnergyKeV = request.EnergyKeV

	intensity := res.InitialIntensity
	for _, layer := range request.Layers {
		if !validate.NonNegative(layer.ThicknessCm) {
			handleRequestErr(w, fmt.Errorf("%w: thicknessCm must be non-negative", errors.ErrMalformed))
			return
		}
		transmission, transmitErr := h.calc.TransmitLayer(
			layer.Material, layer.ThicknessCm, request.EnergyKeV,
		)
		if transmitErr != nil {
			handleRequestErr(w, transmitErr)
			return
		}
		intensity *= transmission.Fraction
		res.AddLayer(transmission, intensity)
	}
	res.FinalIntensity = intensity

	_ = writeJSONResponse(w, http.StatusOK, res)
}

func (h *handler) materialsHandler(w http.ResponseWriter, r *http.Request) {
	materials, availableErr := h.loader.Available()
	if availableErr != nil {
		handleRequestErr(w, availableErr)
		return
	}
	_ = writeJSONResponse(w, http.StatusOK, map[string][]string{"materials": materials})
}
