package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gilliss/AttenCalc/errors"
)

func TestParseLine(t *testing.T) {
	type testCase struct {
		Name     string
		Line     string
		Expected Command
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()

		actual, err := ParseLine(tc.Line)
		assert.NoError(t, err, tc.Name)
		assert.Equal(t, tc.Expected, actual, tc.Name)
	}

	check(t, testCase{
		Name:     "set energy",
		Line:     "Gamma(keV): 662",
		Expected: Command{Kind: SetEnergy, EnergyKeV: 662},
	})
	check(t, testCase{
		Name:     "add layer",
		Line:     "Shield(type,cm): Lead,1.0",
		Expected: Command{Kind: AddLayer, Material: "Lead", Thickness: "1.0"},
	})
	check(t, testCase{
		Name:     "unrecognized command",
		Line:     "Neutron(keV): 25",
		Expected: Command{Kind: Unrecognized},
	})
	check(t, testCase{
		Name:     "comment-like line",
		Line:     "# layers below model the cask wall",
		Expected: Command{Kind: Unrecognized},
	})
}

func TestParseLineErrors(t *testing.T) {
	type testCase struct {
		Name     string
		Line     string
		Expected error
	}

	check := func(t *testing.T, tc testCase) {
		t.Helper()

		_, err := ParseLine(tc.Line)
		assert.ErrorIs(t, err, tc.Expected, tc.Name)
	}

	check(t, testCase{
		Name:     "no whitespace separator",
		Line:     "Gamma(keV):662",
		Expected: errors.ErrScriptFormat,
	})
	check(t, testCase{
		Name:     "empty line",
		Line:     "",
		Expected: errors.ErrScriptFormat,
	})
	check(t, testCase{
		Name:     "energy is not a number",
		Line:     "Gamma(keV): strong",
		Expected: errors.ErrInvalidNumber,
	})
	check(t, testCase{
		Name:     "shield argument without comma",
		Line:     "Shield(type,cm): Lead 1.0",
		Expected: errors.ErrScriptFormat,
	})
}
