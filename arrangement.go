package arranged

import (
	"fmt"
	"math/big"
)

// Arrangement is a box of blue and red discs for which drawing two blue discs
// without replacement has probability exactly 1/2.
//
// Arrangements are immutable values: accessors return fresh big.Int copies,
// and producing the next arrangement never touches the current one.
type Arrangement struct {
	blue *big.Int
	red  *big.Int
}

// NewArrangement builds an Arrangement from blue and red disc counts.
// It rejects counts that are not a genuine solution: blue > red >= 1 must
// hold, and the counts must satisfy 2b(b-1) = t(t-1) exactly.
func NewArrangement(blue, red *big.Int) (Arrangement, error) {
	if blue == nil || red == nil {
		return Arrangement{}, fmt.Errorf("arranged: nil disc count")
	}
	a := Arrangement{
		blue: new(big.Int).Set(blue),
		red:  new(big.Int).Set(red),
	}
	if !a.Valid() {
		return Arrangement{}, fmt.Errorf("arranged: %s blue / %s red is not an even-chance arrangement", blue, red)
	}
	return a, nil
}

// Seed returns the first arrangement of the canonical sequence:
// 15 blue, 6 red, 21 discs total.
func Seed() Arrangement {
	return Arrangement{
		blue: big.NewInt(15),
		red:  big.NewInt(6),
	}
}

// Blue returns the blue disc count.
func (a Arrangement) Blue() *big.Int {
	return new(big.Int).Set(a.blue)
}

// Red returns the red disc count.
func (a Arrangement) Red() *big.Int {
	return new(big.Int).Set(a.red)
}

// Total returns the total disc count b + r.
func (a Arrangement) Total() *big.Int {
	return new(big.Int).Add(a.blue, a.red)
}

// Valid reports whether the arrangement satisfies blue > red >= 1 and the
// exact identity 2b(b-1) = t(t-1). A false result indicates a programming
// error somewhere upstream; nothing in this package can produce one.
func (a Arrangement) Valid() bool {
	if a.blue == nil || a.red == nil {
		return false
	}
	if a.red.Sign() < 1 || a.blue.Cmp(a.red) <= 0 {
		return false
	}

	// lhs = 2b(b-1)
	lhs := new(big.Int).Sub(a.blue, one)
	lhs.Mul(lhs, a.blue)
	lhs.Lsh(lhs, 1)

	// rhs = t(t-1)
	t := a.Total()
	rhs := new(big.Int).Sub(t, one)
	rhs.Mul(rhs, t)

	return lhs.Cmp(rhs) == 0
}

// Probability returns the exact probability of drawing two blue discs,
// b/t · (b-1)/(t-1). For any valid Arrangement this is exactly 1/2.
func (a Arrangement) Probability() *big.Rat {
	t := a.Total()
	num := new(big.Int).Sub(a.blue, one)
	num.Mul(num, a.blue)
	den := new(big.Int).Sub(t, one)
	den.Mul(den, t)
	return new(big.Rat).SetFrac(num, den)
}

// Next returns the next larger arrangement. The recurrence comes from
// composing the underlying negative-Pell solution with the fundamental
// solution 3 + 2√2 of x² - 2y² = 1:
//
//	b' = 5b + 2r - 2
//	r' = 2b + r - 1
//
// Next is total: every valid arrangement has a strictly larger successor,
// so there is no error path.
func (a Arrangement) Next() Arrangement {
	blue := new(big.Int).Mul(five, a.blue)
	blue.Add(blue, new(big.Int).Lsh(a.red, 1))
	blue.Sub(blue, two)

	red := new(big.Int).Lsh(a.blue, 1)
	red.Add(red, a.red)
	red.Sub(red, one)

	return Arrangement{blue: blue, red: red}
}

// String renders the arrangement as "blue=15 red=6 total=21".
func (a Arrangement) String() string {
	return fmt.Sprintf("blue=%s red=%s total=%s", a.blue, a.red, a.Total())
}

// Shared small constants; big.Int allocations are the hot cost in Next.
var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	five = big.NewInt(5)
)
