// SPDX-License-Identifier: MIT
// Package: einsolid/multiplicity
//
// Purpose:
//   - Count microstates of a single Einstein solid exactly.
//
// Exposed API:
//   - Multiplicity(q, n) -> Ω(q, n) = C(q+n−1, q)
//   - Combined(q, nA, nB) -> Ω(q, nA+nB)
//
// Determinism:
//   - Pure functions over their arguments; every call returns a fresh *big.Int.

package multiplicity

import (
	"fmt"
	"math/big"
)

// Multiplicity returns the number of ways to place q indistinguishable quanta
// among n distinguishable oscillators.
//
// Algorithm (stars and bars):
//  1. Validate q ≥ 0 and n ≥ 1.
//  2. Return C(q+n−1, q).
//
// Edge cases:
//   - q = 0 → 1 for every valid n (nothing to place).
//   - n = 1 → 1 for every valid q (everything sits in the only oscillator).
//
// Errors:
//   - ErrInvalidArgument if q < 0 or n <= 0.
//
// Complexity:
//
//	Time   = O(min(q, n−1)) big multiplications and divisions
//	Memory = O(log Ω) bits for the result
func Multiplicity(q, n int) (*big.Int, error) {
	if q < 0 || n <= 0 {
		return nil, invalidf(opMultiplicity, q, n)
	}

	return starsAndBars(q, big.NewInt(int64(n-1))), nil
}

// Combined returns Ω(q, nA+nB): the multiplicity of two solids treated as one
// system with no constraint on how the q quanta split between them.
// It equals the sum of the joint distribution over every split.
func Combined(q, nA, nB int) (*big.Int, error) {
	if q < 0 || nA <= 0 || nB <= 0 {
		return nil, fmt.Errorf("%s(q=%d, nA=%d, nB=%d): %w", opCombined, q, nA, nB, ErrInvalidArgument)
	}

	bars := new(big.Int).Add(big.NewInt(int64(nA)), big.NewInt(int64(nB-1)))

	return starsAndBars(q, bars), nil
}

// starsAndBars returns C(q+bars, q) for q ≥ 0 and bars ≥ 0.
// q+bars is formed in big.Int, so it may exceed the int range.
func starsAndBars(q int, bars *big.Int) *big.Int {
	k := big.NewInt(int64(q))
	top := new(big.Int).Add(bars, k)
	if top.IsInt64() {
		return new(big.Int).Binomial(top.Int64(), int64(q))
	}

	// C(other+k, k) = Π_{i=1..k} (other+i)/i with k the smaller side;
	// every prefix is itself a binomial, so each division is exact.
	other := bars
	if bars.Cmp(k) < 0 {
		k, other = bars, k
	}
	out := big.NewInt(1)
	var f big.Int
	for i := int64(1); i <= k.Int64(); i++ {
		out.Mul(out, f.Add(other, f.SetInt64(i)))
		out.Quo(out, f.SetInt64(i))
	}

	return out
}
