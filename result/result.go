// Package result defines the structured outcome of a calculation run.
package result

import (
	"fmt"
	"strings"

	"github.com/gilliss/AttenCalc/atten"
	"github.com/gilliss/AttenCalc/format"
)

// LayerResult describes the beam after one shielding layer.
type LayerResult struct {
	Material            string  `json:"material"`
	ThicknessCm         float64 `json:"thicknessCm"`
	Density             float64 `json:"density"`
	EnergyMeVUsed       float64 `json:"energyMeVUsed"`
	MassAttenCoeff      float64 `json:"massAttenCoeff"`
	TransmittedFraction float64 `json:"transmittedFraction"`
	RemainingIntensity  float64 `json:"remainingIntensity"`
}

// Result is the outcome of one calculation run. FinalIntensity is
// relative to InitialIntensity, which is fixed at 1.
type Result struct {
	InitialIntensity float64       `json:"initialIntensity"`
	FinalIntensity   float64       `json:"finalIntensity"`
	EnergyKeV        float64       `json:"energyKeV"`
	Layers           []LayerResult `json:"layers"`
}

// NewEmptyResult constructs a Result with no layers applied.
func NewEmptyResult() Result {
	return Result{
		InitialIntensity: 1.0,
		FinalIntensity:   1.0,
		Layers:           []LayerResult{},
	}
}

// AddLayer records one transmission and the running intensity after it.
func (r *Result) AddLayer(t atten.Transmission, remainingIntensity float64) {
	r.Layers = append(r.Layers, LayerResult{
		Material:            t.Material,
		ThicknessCm:         t.ThicknessCm,
		Density:             t.Density,
		EnergyMeVUsed:       t.EnergyMeVUsed,
		MassAttenCoeff:      t.MassAttenCoeff,
		TransmittedFraction: t.Fraction,
		RemainingIntensity:  remainingIntensity,
	})
}

const reportCellWidth = 10

// Report renders a human-readable per-layer breakdown.
func (r Result) Report() string {
	builder := strings.Builder{}

	fmt.Fprintf(&builder, "Gamma-ray energy: %v keV\n", r.EnergyKeV)
	fmt.Fprintf(&builder, "%-12s %10s %10s %10s %10s %10s\n",
		"Material", "t (cm)", "rho", "mu/rho", "T", "I")
	for _, layer := range r.Layers {
		fmt.Fprintf(&builder, "%-12s %s %s %s %s %s\n",
			layer.Material,
			format.FloatToFixedWidthString(layer.ThicknessCm, reportCellWidth),
			format.FloatToFixedWidthString(layer.Density, reportCellWidth),
			format.FloatToFixedWidthString(layer.MassAttenCoeff, reportCellWidth),
			format.FloatToFixedWidthString(layer.TransmittedFraction, reportCellWidth),
			format.FloatToFixedWidthString(layer.RemainingIntensity, reportCellWidth),
		)
	}
	fmt.Fprintf(&builder, "Remaining I = %v, I_init = %v\n",
		r.FinalIntensity, r.InitialIntensity)

	return builder.String()
}
