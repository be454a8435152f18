// Package einsolid is a small laboratory for the statistics of Einstein
// solids: exact microstate counts, the joint distribution of two solids that
// trade energy, and terminal views of that distribution.
//
// 🚀 What is einsolid?
//
//	A pure-Go toolkit that brings together:
//		• Multiplicity: Ω(q, N) = C(q+N−1, q), exact via math/big
//		• Joint distribution: Ω(q_A, N_A)·Ω(q_total−q_A, N_B) for every split
//		• Derived views: peak, probabilities, ln Ω, convolution check
//		• Rendering: vertical bar chart and per-split table for terminals
//		• Interactive explorer: sliders for q_total, N_A, N_B (cmd/einsolid)
//
// ✨ Why einsolid?
//
//   - Exact – no floating factorials, no silent overflow at any size
//   - Pure – core functions are stateless and safe to call on every keypress
//   - Layered – multiplicity ← joint ← chart ← tui, each usable on its own
//
// Packages:
//
//	multiplicity/ — Ω(q, N), Combined, incremental Table memo
//	joint/        — Sequence, Build, Distribution views
//	chart/        — Bars, Table, FormatOmega
//	internal/     — config (viper + env) and the bubbletea view
//	cmd/einsolid/ — the explorer binary
//	examples/     — runnable scenarios
//
// Quick picture (q_total = 3, N_A = N_B = 2):
//
//	Ω_total  4  6  6  4
//	q_A      0  1  2  3     Σ = 20 = Ω(3, 4)
//
//	go install github.com/katalvlaran/einsolid/cmd/einsolid@latest
package einsolid
