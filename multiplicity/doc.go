// Package multiplicity counts the microstates of an Einstein solid.
//
// 🚀 What is an Einstein solid?
//
//	An idealized crystal made of N independent quantum harmonic oscillators.
//	Energy comes in indivisible quanta and every oscillator can hold any
//	non-negative number of them. A macrostate is the pair (q, N); each
//	distinct way of spreading q quanta across N oscillators is a microstate.
//
// ✨ Key features:
//   - exact counts: Ω(q, N) = C(q+N−1, q) evaluated with math/big, no floats
//   - strict domain checks: q ≥ 0 and N ≥ 1, reported as ErrInvalidArgument
//   - Table: incremental memo of Ω(·, N) for sweeps with a fixed N
//   - Combined: Ω of two solids merged into one, Ω(q, N_A+N_B)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/einsolid/multiplicity"
//
//	omega, err := multiplicity.Multiplicity(2, 3) // C(4,2) = 6
//	if err != nil {
//	  // errors.Is(err, multiplicity.ErrInvalidArgument)
//	}
//	fmt.Println(omega) // 6
//
// Stars and bars:
//
//	q = 2, N = 3   ★★||   ★|★|   ★||★   |★★|   |★|★   ||★★   → 6 arrangements
//
// Performance:
//
//   - Multiplicity: O(min(q, N)) big-integer multiplications
//   - Table.At:     amortized O(1) big multiplications per new q
//
// See example_test.go for runnable examples.
package multiplicity
