package arranged

import (
	"testing"
)

// First few arrangements, computed independently (and listed in the problem
// statement for the first two).
var knownPrefix = []struct {
	blue, red, total string
}{
	{"15", "6", "21"},
	{"85", "35", "120"},
	{"493", "204", "697"},
	{"2871", "1189", "4060"},
	{"16731", "6930", "23661"},
	{"97513", "40391", "137904"},
}

func TestGenerator_KnownPrefix(t *testing.T) {
	gen := NewGenerator()

	for i, want := range knownPrefix {
		a := gen.Next()
		AssertArrangement(t, a)
		AssertCounts(t, a, want.blue, want.red)
		if got := a.Total().String(); got != want.total {
			t.Errorf("Arrangement %d: total = %s (want %s)", i, got, want.total)
		}
	}
}

func TestGenerator_StrictlyIncreasing(t *testing.T) {
	seq := Take(25)
	AssertStrictlyIncreasing(t, seq)

	for _, a := range seq {
		AssertArrangement(t, a)
	}

	t.Logf("✓ 25 arrangements, totals %s .. %s", seq[0].Total(), seq[24].Total())
}

func TestGenerator_Idempotent(t *testing.T) {
	g1 := NewGenerator()
	g2 := NewGenerator()

	for i := 0; i < 15; i++ {
		a1, a2 := g1.Next(), g2.Next()
		if a1.Blue().Cmp(a2.Blue()) != 0 || a1.Red().Cmp(a2.Red()) != 0 {
			t.Errorf("Step %d: generators diverged: %v vs %v", i, a1, a2)
		}
	}
}

func TestGenerator_Reset(t *testing.T) {
	gen := NewGenerator()

	first := make([]Arrangement, 8)
	for i := range first {
		first[i] = gen.Next()
	}

	gen.Reset()

	for i := range first {
		a := gen.Next()
		if a.Blue().Cmp(first[i].Blue()) != 0 || a.Red().Cmp(first[i].Red()) != 0 {
			t.Errorf("Step %d after Reset: %v (want %v)", i, a, first[i])
		}
	}
}

func TestEnumerate_StopsWhenVisitReturnsFalse(t *testing.T) {
	calls := 0
	Enumerate(func(Arrangement) bool {
		calls++
		return calls < 4
	})
	if calls != 4 {
		t.Errorf("Enumerate made %d calls (want 4)", calls)
	}
}

func TestTotals_GrowthFactor(t *testing.T) {
	totals := Totals(10)

	// Each total is ~(3+2√2) ≈ 5.83 times the previous. Bound it loosely:
	// next > 5·prev is enough to prove the exponential escape from any
	// threshold.
	for i := 1; i < len(totals); i++ {
		bound := totals[i-1].Mul(totals[i-1], five)
		if totals[i].Cmp(bound) <= 0 {
			t.Errorf("Total %d = %s did not grow 5x over predecessor", i, totals[i])
		}
	}
}

func BenchmarkGeneratorNext(b *testing.B) {
	gen := NewGenerator()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen.Next()
	}
}
