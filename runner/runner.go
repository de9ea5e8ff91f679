// Package runner sequences the shielding layers of a macro script and
// accumulates the surviving beam intensity.
package runner

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gilliss/AttenCalc/atten"
	conf "github.com/gilliss/AttenCalc/config"
	"github.com/gilliss/AttenCalc/errors"
	"github.com/gilliss/AttenCalc/macro"
	"github.com/gilliss/AttenCalc/result"
)

var log = conf.NamedLogger("runner")

// Beam is the running state of the photon beam between layers.
type Beam struct {
	InitialIntensity float64 `json:"initialIntensity"`
	CurrentIntensity float64 `json:"currentIntensity"`
	EnergyKeV        float64 `json:"energyKeV"`
}

// Runner drives the transmission calculator over a macro script.
type Runner struct {
	Calc atten.Calculator

	// Strict rejects unrecognized macro commands instead of skipping
	// them.
	Strict bool
}

// Run processes macro commands from r in order and returns the run
// result. Layers compose multiplicatively; any error aborts the run.
func (run Runner) Run(r io.Reader) (result.Result, error) {
	beam := Beam{InitialIntensity: 1.0, CurrentIntensity: 1.0}
	res := result.NewEmptyResult()

	lineNo := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		cmd, parseErr := macro.ParseLine(scanner.Text())
		if parseErr != nil {
			return res, fmt.Errorf("macro line %d: %w", lineNo, parseErr)
		}

		switch cmd.Kind {
		case macro.SetEnergy:
			log.Infof("Setting gamma-ray energy to %v keV", cmd.EnergyKeV)
			beam.EnergyKeV = cmd.EnergyKeV
			res.EnergyKeV = cmd.EnergyKeV

		case macro.AddLayer:
			log.Infof("Calculating intensity following %s cm of %s", cmd.Thickness, cmd.Material)
			transmission, transmitErr := run.Calc.Transmit(cmd.Material, cmd.Thickness, beam.EnergyKeV)
			if transmitErr != nil {
				return res, fmt.Errorf("macro line %d: %w", lineNo, transmitErr)
			}
			beam.CurrentIntensity *= transmission.Fraction
			res.AddLayer(transmission, beam.CurrentIntensity)
			log.Infof("  Transmit frac, this layer: %v", transmission.Fraction)
			log.Infof("  Remaining I = %v, I_init = %v", beam.CurrentIntensity, beam.InitialIntensity)

		case macro.Unrecognized:
			if run.Strict {
				return res, fmt.Errorf(
					"macro line %d: %w: %q", lineNo, errors.ErrUnknownCommand, scanner.Text(),
				)
			}
			log.Debugf("Skipping unrecognized macro line %d", lineNo)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return res, scanErr
	}

	res.FinalIntensity = beam.CurrentIntensity
	return res, nil
}

// RunFile opens a macro script by path and runs it.
func (run Runner) RunFile(path string) (result.Result, error) {
	file, openErr := os.Open(path)
	if openErr != nil {
		return result.NewEmptyResult(), fmt.Errorf("%w: %s", errors.ErrNotFound, path)
	}
	defer func() { _ = file.Close() }()

	return run.Run(file)
}
