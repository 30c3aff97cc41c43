// Package arranged finds disc arrangements with an exactly even chance of
// drawing two blue discs.
//
// # The Problem
//
// A box holds b blue discs and r red discs. Drawing two discs without
// replacement, the probability that both are blue is:
//
//	P[BB] = b/(b+r) · (b-1)/(b+r-1)
//
// The first box where P[BB] is exactly 1/2 holds 15 blue and 6 red discs
// (21 total); the next holds 85 blue and 35 red (120 total). This package
// enumerates every such arrangement in increasing order of total disc count,
// and answers questions like "what is the first arrangement with more than
// 10^12 discs?" (756872327473 blue discs, out of 1070379110497 total).
//
// # The Mathematics
//
// Writing t = b + r, the constraint P[BB] = 1/2 is the exact integer identity:
//
//	2·b·(b-1) = t·(t-1)
//
// Completing the square on both sides reduces this to the negative Pell
// equation x² - 2y² = -1, whose solutions compose under the fundamental
// solution of x² - 2y² = 1 (that is, 3 + 2√2). Unrolling the composition back
// into disc counts gives a fixed linear recurrence: from any valid (b, r),
// the next larger arrangement is
//
//	b' = 5b + 2r - 2
//	r' = 2b + r - 1
//
// The same solutions also fall out of the continued-fraction convergents of
// √2: each convergent r/s yields Euclid parameters for a primitive Pythagorean
// triple whose legs differ by exactly 1, and the larger leg is a valid total.
// Both constructions are implemented; Convergent exists mainly so the two can
// cross-check each other.
//
// Disc counts exceed 64 bits within a few dozen steps, so all arithmetic is
// math/big. No floating point anywhere on the correctness path.
//
// # Quick Start
//
// Find the first arrangement past a threshold:
//
//	threshold := new(big.Int)
//	threshold.SetString("1000000000000", 10)
//
//	a, err := arranged.FirstExceeding(threshold)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(a.Blue()) // 756872327473
//
// Or walk the sequence directly:
//
//	gen := arranged.NewGenerator()
//	for i := 0; i < 5; i++ {
//	    a := gen.Next()
//	    fmt.Printf("%v discs, %v blue\n", a.Total(), a.Blue())
//	}
//
// Generators are restartable and independent: two generators from the same
// seed always produce the identical sequence.
package arranged
