// Package joint builds the multiplicity distribution of two Einstein solids
// that share a fixed budget of energy quanta.
//
// 🚀 What does it compute?
//
//	Solids A (N_A oscillators) and B (N_B oscillators) exchange quanta while
//	the total q_total stays fixed. Every split q_A + q_B = q_total is a
//	macrostate of the pair; its multiplicity is
//
//	  Ω_total(q_A) = Ω(q_A, N_A) · Ω(q_total − q_A, N_B)
//
//	The sweep over q_A = 0..q_total is the joint distribution. Its entries
//	sum to Ω(q_total, N_A+N_B), the multiplicity of the merged solid.
//
// ✨ Key features:
//   - exact *big.Int entries, index i ↔ q_A = i, length q_total+1
//   - fail-fast: invalid parameters return multiplicity.ErrInvalidArgument
//     and no partial result
//   - optional memoization of both solids across the sweep (WithMemo)
//   - derived views: Total, Peak, Probabilities, LogOmega (entropy S/k)
//   - Verify: checks the convolution identity against multiplicity.Combined
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/einsolid/joint"
//
//	seq, err := joint.Sequence(3, 2, 2) // [4 6 6 4]
//
//	d, err := joint.Build(20, 10, 10, joint.WithMemo())
//	qA, omega := d.Peak()
//
// Performance:
//
//   - Time:   O(q_total) multiplicity evaluations plus one big product each
//   - Memory: O(q_total) big integers
package joint
