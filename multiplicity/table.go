// SPDX-License-Identifier: MIT
// Package: einsolid/multiplicity
//
// table.go — incremental memo of Ω(·, n) for a fixed oscillator count.
//
// A sweep over q with n held fixed (the joint distribution does exactly this
// for each solid) recomputes overlapping binomials. Table keeps Ω(0..k, n)
// and extends it with the ratio
//
//	Ω(q, n) = Ω(q−1, n) · (q+n−1) / q
//
// which is an exact integer division at every step.

package multiplicity

import "math/big"

// Table caches multiplicities of one Einstein solid with n oscillators.
// The zero value is not usable; construct with NewTable.
// A Table is not safe for concurrent use.
type Table struct {
	n     int
	omega []*big.Int // omega[q] = Ω(q, n)
}

// NewTable returns an empty memo for solids with n oscillators.
//
// Errors:
//   - ErrInvalidArgument if n <= 0.
func NewTable(n int) (*Table, error) {
	if n <= 0 {
		return nil, invalidOscillatorsf(opNewTable, n)
	}

	return &Table{n: n, omega: []*big.Int{big.NewInt(1)}}, nil
}

// N returns the oscillator count the table was built for.
func (t *Table) N() int { return t.n }

// Len returns how many consecutive q values (starting at 0) are cached.
func (t *Table) Len() int { return len(t.omega) }

// At returns Ω(q, n), extending the cache up to q when needed.
// The returned value is a copy; mutating it does not corrupt the table.
//
// Errors:
//   - ErrInvalidArgument if q < 0.
//
// Complexity:
//
//	Time   = O(q − Len()) big operations when extending, O(1) otherwise
//	Memory = O(q) cached entries
func (t *Table) At(q int) (*big.Int, error) {
	if q < 0 {
		return nil, invalidf(opTableAt, q, t.n)
	}
	t.extend(q)

	return new(big.Int).Set(t.omega[q]), nil
}

// extend fills omega up to and including index q.
func (t *Table) extend(q int) {
	bars := big.NewInt(int64(t.n - 1))
	var factor big.Int
	for k := len(t.omega); k <= q; k++ {
		next := new(big.Int).Mul(t.omega[k-1], factor.Add(bars, factor.SetInt64(int64(k))))
		next.Quo(next, factor.SetInt64(int64(k)))
		t.omega = append(t.omega, next)
	}
}
