// Package material loads per-material property tables holding densities
// and tabulated mass attenuation coefficients.
//
// Tables are line oriented. Each line is a label and an argument split on
// the first space:
//
//	Density(g/cm^3): 11.35
//	MAC(MeV,cm^2/g,cm^2/g): 0.600 0.1248 0.0684
//
// MAC records carry three fields: energy (MeV), mass attenuation
// coefficient (cm^2/g) and mass energy-absorption coefficient (cm^2/g).
// Only the first two are consumed here. Records are expected ascending by
// energy; the sort order is a precondition of the data files, not
// enforced.
package material

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	conf "github.com/gilliss/AttenCalc/config"
	"github.com/gilliss/AttenCalc/errors"
)

var log = conf.NamedLogger("material")

const (
	densityLabel = "Density(g/cm^3):"
	macLabel     = "MAC(MeV,cm^2/g,cm^2/g):"

	dataFileSuffix = "Data.txt"
)

// Record is one tabulated energy point of a material.
type Record struct {
	EnergyMeV      float64 `json:"energyMeV"`
	MassAttenCoeff float64 `json:"massAttenCoeff"`
}

// Properties holds the physical constants of one material.
type Properties struct {
	// Density in g/cm^3.
	Density float64 `json:"density"`
	// Table of attenuation records, ascending by energy.
	Table []Record `json:"table"`
}

// Loader reads property tables from a data directory. Tables follow the
// naming convention <DataDir>/<material>Data.txt. Every call reopens and
// rescans the file; wrap a Loader in a Cache to load each material once.
type Loader struct {
	DataDir string
}

// DataFilePath returns the table path for a material name.
func (l Loader) DataFilePath(material string) string {
	return filepath.Join(l.DataDir, material+dataFileSuffix)
}

// Available lists the materials having a table under DataDir.
func (l Loader) Available() ([]string, error) {
	entries, readErr := os.ReadDir(l.DataDir)
	if readErr != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrNotFound, readErr.Error())
	}

	materials := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasSuffix(name, dataFileSuffix) {
			materials = append(materials, strings.TrimSuffix(name, dataFileSuffix))
		}
	}
	return materials, nil
}

// LoadDensity returns the density (g/cm^3) of the material.
func (l Loader) LoadDensity(material string) (float64, error) {
	density := 0.0
	found := false

	scanErr := l.scan(material, func(label, arg string) error {
		if found || label != densityLabel {
			return nil
		}
		value, parseErr := parseFloat(arg)
		if parseErr != nil {
			return parseErr
		}
		density = value
		found = true
		return nil
	})
	if scanErr != nil {
		return 0, scanErr
	}
	if !found {
		return 0, fmt.Errorf(
			"%w: no density record in table for %q", errors.ErrMissingField, material,
		)
	}

	log.Infof("Density of %s: %v g/cm^3", material, density)
	return density, nil
}

// LoadCoefficientTable returns the energy-indexed mass attenuation
// coefficients of the material. Lines other than MAC records are skipped.
func (l Loader) LoadCoefficientTable(material string) ([]Record, error) {
	records := []Record{}

	scanErr := l.scan(material, func(label, arg string) error {
		if label != macLabel {
			return nil
		}
		fields := strings.Fields(arg)
		if len(fields) < 3 {
			return fmt.Errorf(
				"%w: expected 3 fields in MAC record, got %q", errors.ErrMalformedRecord, arg,
			)
		}
		energy, energyErr := parseFloat(fields[0])
		if energyErr != nil {
			return energyErr
		}
		coeff, coeffErr := parseFloat(fields[1])
		if coeffErr != nil {
			return coeffErr
		}
		records = append(records, Record{EnergyMeV: energy, MassAttenCoeff: coeff})
		return nil
	})
	if scanErr != nil {
		return nil, scanErr
	}
	return records, nil
}

// LoadProperties loads density and the coefficient table in one call.
func (l Loader) LoadProperties(material string) (*Properties, error) {
	density, densityErr := l.LoadDensity(material)
	if densityErr != nil {
		return nil, densityErr
	}
	table, tableErr := l.LoadCoefficientTable(material)
	if tableErr != nil {
		return nil, tableErr
	}
	return &Properties{Density: density, Table: table}, nil
}

// scan opens the material table and feeds every parsed line to fn.
func (l Loader) scan(material string, fn func(label, arg string) error) error {
	path := l.DataFilePath(material)
	file, openErr := os.Open(path)
	if openErr != nil {
		return fmt.Errorf("%w: %s", errors.ErrNotFound, path)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		label, arg, separated := strings.Cut(line, " ")
		if !separated {
			return fmt.Errorf(
				"%w: %s: no label separator in line %q", errors.ErrMalformedRecord, path, line,
			)
		}
		if err := fn(label, arg); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseFloat(s string) (float64, error) {
	value, parseErr := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if parseErr != nil {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidNumber, s)
	}
	return value, nil
}
