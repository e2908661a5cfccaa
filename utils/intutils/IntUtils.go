// Package intutils implements utility functions on integers
package intutils

// Clip clips value to the closed range [min, max]
func Clip(value, min, max int) int {
	if min > max {
		panic("clip: min must not exceed max")
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
