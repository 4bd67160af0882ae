package clipper2

import "math"

// Scale is the fixed multiplier that maps floating-point application coordinates
// onto the integer grid the clipping engine operates on. All paths taking part in
// one boolean operation must share the same scale.
type Scale float64

const (
	// Unit maps application coordinates 1:1 onto the grid.
	Unit Scale = 1
	// Deci keeps one decimal of precision.
	Deci Scale = 10
	// Centi keeps two decimals of precision. This is the default.
	Centi Scale = 100
	// Milli keeps three decimals of precision.
	Milli Scale = 1000
)

// ToGrid converts an application coordinate to a grid coordinate, rounding half
// away from zero.
func (s Scale) ToGrid(v float64) int64 {
	return int64(math.Round(v * float64(s)))
}

// FromGrid converts a grid coordinate back to an application coordinate.
func (s Scale) FromGrid(v int64) float64 {
	return float64(v) / float64(s)
}
