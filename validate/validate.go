// Package validate holds small physical-validity checks for request
// input.
package validate

// NonNegative reports whether value is physically valid as an energy,
// thickness, density or coefficient.
func NonNegative(value float64) bool {
	return value >= 0
}
