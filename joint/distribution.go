// SPDX-License-Identifier: MIT
// Package: einsolid/joint
//
// distribution.go — the result of a sweep plus the views the presentation
// layer draws from it.

package joint

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/einsolid/multiplicity"
)

// Distribution is the joint multiplicity of two Einstein solids over every
// split of a shared quantum budget.
//
// Fields:
//   - QTotal — quanta shared by the two solids.
//   - NA, NB — oscillator counts of solids A and B.
//   - Omega  — Omega[qA] = Ω(qA, NA) · Ω(QTotal−qA, NB), len = QTotal+1.
//
// Omega entries are owned by the Distribution; callers must treat them as
// read-only or use At for a private copy.
type Distribution struct {
	QTotal int
	NA     int
	NB     int
	Omega  []*big.Int
}

// Len returns the number of splits, QTotal+1.
func (d *Distribution) Len() int { return len(d.Omega) }

// At returns a copy of Ω_total for the split with qA quanta in solid A.
//
// Errors:
//   - ErrOutOfRange if qA < 0 or qA > QTotal.
func (d *Distribution) At(qA int) (*big.Int, error) {
	if qA < 0 || qA >= len(d.Omega) {
		return nil, fmt.Errorf("%s(%d) with q_total=%d: %w", opAt, qA, d.QTotal, ErrOutOfRange)
	}

	return new(big.Int).Set(d.Omega[qA]), nil
}

// Total returns Σ Omega, the number of microstates of the pair.
func (d *Distribution) Total() *big.Int {
	sum := new(big.Int)
	for _, v := range d.Omega {
		sum.Add(sum, v)
	}

	return sum
}

// Peak returns the most probable split and its multiplicity.
// Ties resolve to the smallest qA. An empty Distribution yields (-1, nil).
func (d *Distribution) Peak() (qA int, omega *big.Int) {
	if len(d.Omega) == 0 {
		return -1, nil
	}
	best := 0
	for i := 1; i < len(d.Omega); i++ {
		if d.Omega[i].Cmp(d.Omega[best]) > 0 {
			best = i
		}
	}

	return best, new(big.Int).Set(d.Omega[best])
}

// Probabilities returns Omega[qA] / Total for every split.
// Each ratio is formed exactly with big.Rat and rounded once to float64, so
// entries stay meaningful even when Total has hundreds of digits.
func (d *Distribution) Probabilities() []float64 {
	out := make([]float64, len(d.Omega))
	total := d.Total()
	if total.Sign() == 0 {
		return out
	}
	var r big.Rat
	for i, v := range d.Omega {
		out[i], _ = r.SetFrac(v, total).Float64()
	}

	return out
}

// LogOmega returns ln Omega[qA] for every split, the entropy S/k of that
// macrostate. Values are derived from the big.Int mantissa and exponent, so
// they never overflow.
func (d *Distribution) LogOmega() []float64 {
	out := make([]float64, len(d.Omega))
	for i, v := range d.Omega {
		out[i] = logBig(v)
	}

	return out
}

// Verify checks that Total equals Ω(QTotal, NA+NB).
//
// Errors:
//   - ErrIdentityViolated on mismatch.
//   - multiplicity.ErrInvalidArgument if the Distribution was hand-built with
//     invalid parameters.
func (d *Distribution) Verify() error {
	want, err := multiplicity.Combined(d.QTotal, d.NA, d.NB)
	if err != nil {
		return fmt.Errorf("%s: %w", opVerify, err)
	}
	if d.Total().Cmp(want) != 0 {
		return fmt.Errorf("%s(q_total=%d, N_A=%d, N_B=%d): %w",
			opVerify, d.QTotal, d.NA, d.NB, ErrIdentityViolated)
	}

	return nil
}

// logBig returns ln x for x > 0 and -Inf for x = 0.
// x = m · 2^e with m ∈ [0.5, 1) ⇒ ln x = ln m + e·ln 2.
func logBig(x *big.Int) float64 {
	if x.Sign() <= 0 {
		return math.Inf(-1)
	}
	var mant big.Float
	exp := new(big.Float).SetInt(x).MantExp(&mant)
	m, _ := mant.Float64()

	return math.Log(m) + float64(exp)*math.Ln2
}
