package atten

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestIndex(t *testing.T) {
	type testCase struct {
		Name     string
		Energies []float64
		Query    float64
		Expected int
	}

	energies := []float64{0.1, 0.2, 0.5, 1.0, 2.0}

	check := func(t *testing.T, tc testCase) {
		t.Helper()

		assert.Equal(t, tc.Expected, ClosestIndex(tc.Energies, tc.Query), tc.Name)
	}

	check(t, testCase{
		Name:     "exact match returns that index",
		Energies: energies,
		Query:    0.5,
		Expected: 2,
	})
	check(t, testCase{
		Name:     "exact match on first entry",
		Energies: energies,
		Query:    0.1,
		Expected: 0,
	})
	check(t, testCase{
		Name:     "exact match on last entry",
		Energies: energies,
		Query:    2.0,
		Expected: 4,
	})
	check(t, testCase{
		Name:     "nearest below midpoint",
		Energies: energies,
		Query:    0.3,
		Expected: 1,
	})
	check(t, testCase{
		Name:     "nearest above midpoint",
		Energies: energies,
		Query:    0.45,
		Expected: 2,
	})
	check(t, testCase{
		Name:     "equidistant query resolves to the upper neighbor",
		Energies: energies,
		Query:    1.5,
		Expected: 4,
	})
	check(t, testCase{
		Name:     "query below the table clamps to the first entry",
		Energies: energies,
		Query:    0.01,
		Expected: 0,
	})
	check(t, testCase{
		Name:     "query above the table clamps to the last entry",
		Energies: energies,
		Query:    10.0,
		Expected: 4,
	})
	check(t, testCase{
		Name:     "single entry table",
		Energies: []float64{0.662},
		Query:    1.0,
		Expected: 0,
	})
}
