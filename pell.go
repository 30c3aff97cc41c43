package arranged

import (
	"fmt"
	"math/big"
)

// Convergent is a continued-fraction convergent r/s of √2. Successive
// convergents alternately solve the negative and positive Pell equations
//
//	r² - 2s² = -1   (odd-index convergents)
//	r² - 2s² = +1   (even-index convergents)
//
// and each one determines an even-chance disc arrangement through Euclid's
// formula for Pythagorean triples (see Arrangement). This is an independent
// construction of the same sequence the Generator produces by recurrence;
// the two exist to cross-check each other.
type Convergent struct {
	r *big.Int
	s *big.Int
}

// FirstConvergent returns the convergent 1/1, the start of the √2 cascade.
func FirstConvergent() Convergent {
	return Convergent{r: big.NewInt(1), s: big.NewInt(1)}
}

// Next returns the following convergent: (r + 2s) / (r + s).
func (c Convergent) Next() Convergent {
	return Convergent{
		r: new(big.Int).Add(c.r, new(big.Int).Lsh(c.s, 1)),
		s: new(big.Int).Add(c.r, c.s),
	}
}

// PellResidue returns r² - 2s², which is -1 or +1 for every convergent of √2.
func (c Convergent) PellResidue() *big.Int {
	r2 := new(big.Int).Mul(c.r, c.r)
	s2 := new(big.Int).Mul(c.s, c.s)
	return r2.Sub(r2, s2.Lsh(s2, 1))
}

// Arrangement derives the disc arrangement this convergent encodes.
//
// The convergent gives Euclid parameters p = r+s, q = s, generating a
// primitive Pythagorean triple with legs a = p²-q² and b = 2pq. The Pell
// residue forces |a-b| = 1, the larger leg is a valid total disc count t,
// and the blue count is (1 + √(1+2ab)) / 2 — an exact integer square root,
// since 1+2ab = a²+b² with the legs adjacent.
//
// Convergent 1/1 yields the trivial arrangement (3 blue, 1 red); convergent
// 3/2 yields the canonical seed (15, 6).
func (c Convergent) Arrangement() (Arrangement, error) {
	// Legs: a = p²-q² = (p-q)(p+q) = r·(r+2s), b = 2pq = 2s(r+s).
	legA := new(big.Int).Lsh(c.s, 1)
	legA.Add(legA, c.r)
	legA.Mul(legA, c.r)

	legB := new(big.Int).Add(c.r, c.s)
	legB.Mul(legB, c.s)
	legB.Lsh(legB, 1)

	total := legA
	if legB.Cmp(legA) > 0 {
		total = legB
	}

	// blue = (1 + √(1+2ab)) / 2
	radicand := new(big.Int).Mul(legA, legB)
	radicand.Lsh(radicand, 1)
	radicand.Add(radicand, one)
	root := new(big.Int).Sqrt(radicand)
	if check := new(big.Int).Mul(root, root); check.Cmp(radicand) != 0 {
		// Unreachable for genuine √2 convergents.
		return Arrangement{}, fmt.Errorf("arranged: convergent %s/%s: radicand %s is not a perfect square", c.r, c.s, radicand)
	}
	blue := root.Add(root, one)
	blue.Rsh(blue, 1)

	red := new(big.Int).Sub(total, blue)
	return NewArrangement(blue, red)
}

// String renders the convergent as a fraction, e.g. "3/2".
func (c Convergent) String() string {
	return fmt.Sprintf("%s/%s", c.r, c.s)
}
