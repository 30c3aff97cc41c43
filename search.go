package arranged

import (
	"errors"
	"math/big"
)

// ErrInvalidThreshold is returned when a search threshold is nil or not a
// positive integer.
var ErrInvalidThreshold = errors.New("arranged: threshold must be a positive integer")

// FirstExceeding returns the first arrangement whose total disc count is
// strictly greater than threshold.
//
// The comparison is exact big.Int arithmetic; no probability is ever
// evaluated in floating point. The search always terminates: totals grow by
// a factor of ≈5.83 per step, so even a 10^12 threshold is crossed in about
// fifteen iterations.
func FirstExceeding(threshold *big.Int) (Arrangement, error) {
	return WalkPast(threshold, nil)
}

// WalkPast is FirstExceeding with a window into the search: observe, if
// non-nil, is called for every arrangement at or below the threshold before
// the result is returned. Used by the CLI's verbose mode and by tests that
// care about intermediate solutions.
func WalkPast(threshold *big.Int, observe func(Arrangement)) (Arrangement, error) {
	if threshold == nil || threshold.Sign() < 1 {
		return Arrangement{}, ErrInvalidThreshold
	}

	var found Arrangement
	Enumerate(func(a Arrangement) bool {
		if a.Total().Cmp(threshold) > 0 {
			found = a
			return false
		}
		if observe != nil {
			observe(a)
		}
		return true
	})
	return found, nil
}
