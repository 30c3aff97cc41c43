package arranged

import (
	"math/big"
	"testing"
)

// Test helpers for arrangement properties. Kept in the library (not a _test
// file) so downstream packages can assert the same invariants on their own
// sequences.

// AssertArrangement verifies the full set of arrangement invariants:
// blue > red >= 1, the exact identity 2b(b-1) = t(t-1), and probability
// exactly 1/2.
func AssertArrangement(t *testing.T, a Arrangement) {
	t.Helper()

	if !a.Valid() {
		t.Errorf("Invalid arrangement: %v\n"+
			"Expected blue > red >= 1 and 2b(b-1) = t(t-1) exactly.", a)
		return
	}

	half := big.NewRat(1, 2)
	if p := a.Probability(); p.Cmp(half) != 0 {
		t.Errorf("P[BB] = %s for %v (want exactly 1/2)", p, a)
	}
}

// AssertStrictlyIncreasing verifies totals grow strictly along the sequence.
func AssertStrictlyIncreasing(t *testing.T, seq []Arrangement) {
	t.Helper()

	for i := 1; i < len(seq); i++ {
		prev, cur := seq[i-1].Total(), seq[i].Total()
		if cur.Cmp(prev) <= 0 {
			t.Errorf("Totals not strictly increasing at index %d: %s then %s",
				i, prev, cur)
		}
	}
}

// AssertCounts verifies an arrangement against expected decimal counts.
// Counts are strings because they outgrow int64 a dozen steps in.
func AssertCounts(t *testing.T, a Arrangement, blue, red string) {
	t.Helper()

	if got := a.Blue().String(); got != blue {
		t.Errorf("Blue count = %s (want %s)", got, blue)
	}
	if got := a.Red().String(); got != red {
		t.Errorf("Red count = %s (want %s)", got, red)
	}
}
