// Package atten implements nearest-energy coefficient lookup and the
// exponential photon attenuation law.
package atten

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	conf "github.com/gilliss/AttenCalc/config"
	"github.com/gilliss/AttenCalc/errors"
	"github.com/gilliss/AttenCalc/material"
)

var log = conf.NamedLogger("atten")

// Source provides per-material physical properties.
type Source interface {
	LoadDensity(material string) (float64, error)
	LoadCoefficientTable(material string) ([]material.Record, error)
}

// Transmission describes the beam fraction surviving one shielding layer.
type Transmission struct {
	Material       string  `json:"material"`
	ThicknessCm    float64 `json:"thicknessCm"`
	Density        float64 `json:"density"`
	EnergyMeVUsed  float64 `json:"energyMeVUsed"`
	MassAttenCoeff float64 `json:"massAttenCoeff"`
	Fraction       float64 `json:"fraction"`
}

// Calculator computes transmitted fractions using tables from Source.
type Calculator struct {
	Source Source
}

// Fraction returns exp(-coeff*density*thickness), the fraction of beam
// intensity transmitted through one layer.
//
//	coeff       mass attenuation coefficient (cm^2/g)
//	density     density of the absorber material (g/cm^3)
//	thicknessCm thickness of the absorber material (cm)
func Fraction(coeff, density, thicknessCm float64) float64 {
	return math.Exp(-1 * coeff * density * thicknessCm)
}

// Transmit parses the thickness (cm) and returns the transmission of one
// layer of the material at the given beam energy (keV).
func (c Calculator) Transmit(materialName, thickness string, energyKeV float64) (Transmission, error) {
	thicknessCm, parseErr := strconv.ParseFloat(strings.TrimSpace(thickness), 64)
	if parseErr != nil {
		return Transmission{}, fmt.Errorf("%w: thickness %q", errors.ErrInvalidNumber, thickness)
	}
	return c.TransmitLayer(materialName, thicknessCm, energyKeV)
}

// TransmitLayer is Transmit with an already-parsed thickness.
func (c Calculator) TransmitLayer(
	materialName string, thicknessCm, energyKeV float64,
) (Transmission, error) {
	density, densityErr := c.Source.LoadDensity(materialName)
	if densityErr != nil {
		return Transmission{}, densityErr
	}

	table, tableErr := c.Source.LoadCoefficientTable(materialName)
	if tableErr != nil {
		return Transmission{}, tableErr
	}
	if len(table) == 0 {
		return Transmission{}, fmt.Errorf(
			"%w: no attenuation records for %q", errors.ErrMissingField, materialName,
		)
	}

	energies := make([]float64, len(table))
	for i, record := range table {
		energies[i] = record.EnergyMeV
	}

	// tables are tabulated in MeV, the beam energy arrives in keV
	record := table[ClosestIndex(energies, energyKeV/1000)]
	log.Infof("Energy and MassAttenCoeff used for %s %v keV: %v MeV, %v cm^2/g",
		materialName, energyKeV, record.EnergyMeV, record.MassAttenCoeff)

	return Transmission{
		Material:       materialName,
		ThicknessCm:    thicknessCm,
		Density:        density,
		EnergyMeVUsed:  record.EnergyMeV,
		MassAttenCoeff: record.MassAttenCoeff,
		Fraction:       Fraction(record.MassAttenCoeff, density, thicknessCm),
	}, nil
}
