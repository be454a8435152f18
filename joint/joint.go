// SPDX-License-Identifier: MIT
// Package: einsolid/joint
//
// Purpose:
//   - Sweep q_A over [0, q_total] and form Ω(q_A, N_A) · Ω(q_total−q_A, N_B).
//
// Exposed API:
//   - Sequence(qTotal, nA, nB)      -> []*big.Int
//   - Build(qTotal, nA, nB, opts…)  -> *Distribution

package joint

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/einsolid/multiplicity"
)

// omegaFunc evaluates Ω(q, n) for the n bound to one solid.
type omegaFunc func(q int) (*big.Int, error)

// Sequence returns the joint multiplicity for every split of qTotal quanta
// between a solid of nA oscillators and a solid of nB oscillators.
// Index i of the result is q_A = i; len(result) == qTotal+1.
//
// Errors:
//   - multiplicity.ErrInvalidArgument if qTotal < 0, nA <= 0 or nB <= 0.
//
// Example:
//
//	seq, _ := Sequence(3, 2, 2) // [4 6 6 4]
func Sequence(qTotal, nA, nB int) ([]*big.Int, error) {
	d, err := Build(qTotal, nA, nB)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSequence, err)
	}

	return d.Omega, nil
}

// Build computes the joint distribution and wraps it in a Distribution.
//
// Algorithm:
//  1. Validate qTotal ≥ 0, nA ≥ 1, nB ≥ 1 before any allocation.
//  2. Bind one omegaFunc per solid (direct or Table-backed, see WithMemo).
//  3. For qA = 0..qTotal: Ω_A = ωA(qA), Ω_B = ωB(qTotal−qA), emit Ω_A·Ω_B.
//  4. With WithVerify, compare the total against Ω(qTotal, nA+nB).
//
// Errors from the inner multiplicity calls propagate unchanged (wrapped with
// %w); there is no partial result.
//
// Complexity:
//
//	Time   = O(qTotal) multiplicity evaluations + O(qTotal) big products
//	Memory = O(qTotal) big integers
func Build(qTotal, nA, nB int, opts ...Option) (*Distribution, error) {
	cfg := newBuildConfig(opts...)
	if qTotal < 0 || nA <= 0 || nB <= 0 {
		return nil, fmt.Errorf("%s(qTotal=%d, nA=%d, nB=%d): %w",
			opBuild, qTotal, nA, nB, multiplicity.ErrInvalidArgument)
	}

	omegaA, err := bind(nA, cfg.memo)
	if err != nil {
		return nil, fmt.Errorf("%s: solid A: %w", opBuild, err)
	}
	omegaB, err := bind(nB, cfg.memo)
	if err != nil {
		return nil, fmt.Errorf("%s: solid B: %w", opBuild, err)
	}

	d := &Distribution{
		QTotal: qTotal,
		NA:     nA,
		NB:     nB,
		Omega:  make([]*big.Int, 0, qTotal+1),
	}
	for qA := 0; qA <= qTotal; qA++ {
		a, err := omegaA(qA)
		if err != nil {
			return nil, fmt.Errorf("%s: Ω_A(q_A=%d): %w", opBuild, qA, err)
		}
		b, err := omegaB(qTotal - qA)
		if err != nil {
			return nil, fmt.Errorf("%s: Ω_B(q_B=%d): %w", opBuild, qTotal-qA, err)
		}
		d.Omega = append(d.Omega, a.Mul(a, b))
	}

	if cfg.verify {
		if err := d.Verify(); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// bind returns the Ω(·, n) evaluator for one solid.
func bind(n int, memo bool) (omegaFunc, error) {
	if !memo {
		return func(q int) (*big.Int, error) {
			return multiplicity.Multiplicity(q, n)
		}, nil
	}
	tbl, err := multiplicity.NewTable(n)
	if err != nil {
		return nil, err
	}

	return tbl.At, nil
}
