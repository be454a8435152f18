// Package chart draws a joint multiplicity distribution as terminal text.
//
// Two renderings are provided:
//
//	Bars  — vertical bar chart, one column per q_A (neighbours merged at
//	        their maximum when the width runs out), eighth-block glyphs
//	        (▁▂▃▄▅▆▇█) for sub-row resolution, y-axis scaled to the peak.
//	Table — one row per q_A with a █/░ bar, the probability of the split
//	        and its exact multiplicity.
//
// Heights are computed from exact big.Rat ratios against the peak, so
// distributions whose entries run to hundreds of digits scale correctly.
// Styling goes through lipgloss; when the output is not a terminal lipgloss
// drops the escape codes and the result is plain text.
package chart
