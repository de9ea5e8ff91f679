package atten

import (
	"math"
	"sort"
)

// ClosestIndex returns the index of the entry in energies nearest to
// query. energies must be non-empty and ascending. An equidistant query
// resolves to the upper neighbor. Queries below the first or above the
// last tabulated energy clamp to that end of the table.
func ClosestIndex(energies []float64, query float64) int {
	ub := sort.Search(len(energies), func(i int) bool { return energies[i] > query })
	lb := ub - 1

	if lb < 0 {
		return 0
	}
	if ub == len(energies) {
		return len(energies) - 1
	}

	log.Debugf("Closest energies in data for %v: %v %v", query, energies[lb], energies[ub])
	if math.Abs(energies[ub]-query) > math.Abs(energies[lb]-query) {
		return lb
	}
	return ub
}
