package arranged

import (
	"testing"
)

func TestConvergent_Sequence(t *testing.T) {
	want := []string{"1/1", "3/2", "7/5", "17/12", "41/29", "99/70"}

	c := FirstConvergent()
	for i, w := range want {
		if got := c.String(); got != w {
			t.Errorf("Convergent %d = %s (want %s)", i, got, w)
		}
		c = c.Next()
	}
}

func TestConvergent_PellResidueAlternates(t *testing.T) {
	c := FirstConvergent()

	for i := 0; i < 20; i++ {
		res := c.PellResidue()
		want := int64(-1)
		if i%2 == 1 {
			want = 1
		}
		if !res.IsInt64() || res.Int64() != want {
			t.Errorf("Convergent %d (%s): r²-2s² = %s (want %d)", i, c, res, want)
		}
		c = c.Next()
	}

	t.Logf("✓ 20 convergents alternate r²-2s² = -1, +1")
}

func TestConvergent_TrivialArrangement(t *testing.T) {
	// 1/1 encodes the smallest solution of all: 3 blue, 1 red, 4 total.
	// The canonical sequence starts one step later at (15, 6).
	a, err := FirstConvergent().Arrangement()
	if err != nil {
		t.Fatalf("Arrangement() failed: %v", err)
	}

	AssertArrangement(t, a)
	AssertCounts(t, a, "3", "1")
}

func TestConvergent_SeedArrangement(t *testing.T) {
	a, err := FirstConvergent().Next().Arrangement()
	if err != nil {
		t.Fatalf("Arrangement() failed: %v", err)
	}

	AssertCounts(t, a, "15", "6")
}

// The convergent construction and the linear recurrence are independent
// derivations of the same sequence; they must agree term for term.
func TestConvergent_AgreesWithGenerator(t *testing.T) {
	gen := NewGenerator()
	c := FirstConvergent().Next() // skip the trivial (3, 1)

	for i := 0; i < 20; i++ {
		fromConvergent, err := c.Arrangement()
		if err != nil {
			t.Fatalf("Convergent %d (%s): %v", i, c, err)
		}
		fromRecurrence := gen.Next()

		if fromConvergent.Blue().Cmp(fromRecurrence.Blue()) != 0 ||
			fromConvergent.Red().Cmp(fromRecurrence.Red()) != 0 {
			t.Errorf("Term %d: convergent path %v, recurrence path %v",
				i, fromConvergent, fromRecurrence)
		}
		c = c.Next()
	}

	t.Logf("✓ Both constructions agree for 20 terms")
}
