// Package macro parses the command scripts driving a calculation run.
//
// A macro is line oriented, one command per line, label and argument
// split on the first space:
//
//	Gamma(keV): 662
//	Shield(type,cm): Lead,1.0
//
// Lines with an unrecognized label parse as Unrecognized commands; the
// caller decides whether to skip or reject them.
package macro

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gilliss/AttenCalc/errors"
)

const (
	gammaLabel  = "Gamma(keV):"
	shieldLabel = "Shield(type,cm):"
)

// Kind discriminates parsed commands.
type Kind int

const (
	// Unrecognized is any line whose label is not a known command.
	Unrecognized Kind = iota
	// SetEnergy sets the beam energy for all subsequent layers.
	SetEnergy
	// AddLayer applies one shielding layer to the beam.
	AddLayer
)

// Command is one parsed macro line.
type Command struct {
	Kind Kind

	// EnergyKeV is set for SetEnergy commands.
	EnergyKeV float64

	// Material and Thickness are set for AddLayer commands. Thickness
	// stays text here; the transmission calculator parses it.
	Material  string
	Thickness string
}

// ParseLine parses a single macro line into a Command.
func ParseLine(line string) (Command, error) {
	label, arg, separated := strings.Cut(line, " ")
	if !separated {
		return Command{}, fmt.Errorf(
			"%w: no label separator in line %q", errors.ErrScriptFormat, line,
		)
	}

	switch label {
	case gammaLabel:
		energy, parseErr := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if parseErr != nil {
			return Command{}, fmt.Errorf("%w: energy %q", errors.ErrInvalidNumber, arg)
		}
		return Command{Kind: SetEnergy, EnergyKeV: energy}, nil

	case shieldLabel:
		materialName, thickness, separated := strings.Cut(arg, ",")
		if !separated {
			return Command{}, fmt.Errorf(
				"%w: no comma between material and thickness in %q", errors.ErrScriptFormat, arg,
			)
		}
		return Command{
			Kind:      AddLayer,
			Material:  strings.TrimSpace(materialName),
			Thickness: thickness,
		}, nil
	}

	return Command{Kind: Unrecognized}, nil
}
