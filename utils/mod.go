package utils

import "golang.org/x/exp/constraints"

// Sum adds up every value in the slice.
func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

func AllZero[T constraints.Integer](values []T) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}
