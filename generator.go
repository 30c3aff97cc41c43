package arranged

import "math/big"

// Generator produces the infinite sequence of arrangements in strictly
// increasing order of total disc count, starting from the seed (15, 6).
//
// A Generator is lazy and restartable: Next computes one arrangement per
// call, Reset rewinds to the seed, and two generators never share state.
// Not safe for concurrent use; every consumer gets its own.
type Generator struct {
	current Arrangement
	started bool
}

// NewGenerator returns a generator positioned before the seed arrangement.
func NewGenerator() *Generator {
	return &Generator{current: Seed()}
}

// Next returns the next arrangement in the sequence. The first call returns
// the seed (15, 6); each later call returns the successor of the previous
// result. Next never fails.
func (g *Generator) Next() Arrangement {
	if !g.started {
		g.started = true
		return g.current
	}
	g.current = g.current.Next()
	return g.current
}

// Reset rewinds the generator to the seed. A reset generator reproduces the
// identical sequence.
func (g *Generator) Reset() {
	g.current = Seed()
	g.started = false
}

// Enumerate walks the sequence from the seed, calling visit for each
// arrangement in order, and stops when visit returns false.
func Enumerate(visit func(Arrangement) bool) {
	gen := NewGenerator()
	for visit(gen.Next()) {
	}
}

// Take returns the first n arrangements of the sequence. Mostly a test and
// exploration convenience.
func Take(n int) []Arrangement {
	out := make([]Arrangement, 0, n)
	Enumerate(func(a Arrangement) bool {
		out = append(out, a)
		return len(out) < n
	})
	return out
}

// Totals returns the totals of the first n arrangements. Useful for eyeballing
// growth: each total is roughly (3+2√2) ≈ 5.83 times the previous one.
func Totals(n int) []*big.Int {
	arrangements := Take(n)
	out := make([]*big.Int, len(arrangements))
	for i, a := range arrangements {
		out[i] = a.Total()
	}
	return out
}
