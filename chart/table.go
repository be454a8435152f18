package chart

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/katalvlaran/einsolid/joint"
)

// minTableBar keeps the bar readable on narrow terminals.
const minTableBar = 10

// Table renders one row per q_A:
//
//	q_A │ ██████░░░░ │  12.34% │ Ω_total
//
// Bars are proportional to the probability of the split relative to the
// peak. width is the target line width; the bar absorbs whatever the other
// columns leave, but never shrinks below minTableBar cells.
func Table(d *joint.Distribution, width int) string {
	if d == nil || d.Len() == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}

	peakIdx, _ := d.Peak()
	probs := d.Probabilities()
	peakP := probs[peakIdx]

	omegas := make([]string, d.Len())
	omegaW := ansi.StringWidth("Ω_total")
	for i, v := range d.Omega {
		omegas[i] = FormatOmega(v, 15)
		omegaW = max(omegaW, ansi.StringWidth(omegas[i]))
	}
	qW := max(len(strconv.Itoa(d.QTotal)), len("q_A"))
	const pctW = 8
	barW := max(width-qW-pctW-omegaW-9, minTableBar)

	var lines []string
	lines = append(lines, labelStyle.Render(
		padLeft("q_A", qW)+" │ "+padRight("distribution", barW)+" │ "+padLeft("P", pctW)+" │ "+padLeft("Ω_total", omegaW)))
	lines = append(lines, axisStyle.Render(
		strings.Repeat("─", qW+1)+"┼"+strings.Repeat("─", barW+2)+"┼"+strings.Repeat("─", pctW+2)+"┼"+strings.Repeat("─", omegaW+1)))

	for i, p := range probs {
		filled := 0
		if peakP > 0 {
			filled = int(math.Round(float64(barW) * p / peakP))
		}
		if filled < 1 && p > 0 {
			filled = 1
		}
		filled = min(filled, barW)

		style := barStyle
		if i == peakIdx {
			style = peakStyle
		}
		bar := style.Render(strings.Repeat("█", filled)) + trackStyle.Render(strings.Repeat("░", barW-filled))
		lines = append(lines,
			padLeft(strconv.Itoa(i), qW)+" │ "+bar+" │ "+padLeft(formatPercent(p), pctW)+" │ "+padLeft(omegas[i], omegaW))
	}

	return strings.Join(lines, "\n")
}

// padRight left-aligns s in a field of w cells.
func padRight(s string, w int) string {
	if gap := w - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}

	return s
}
