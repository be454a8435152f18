package chart

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/einsolid/joint"
)

// eighths[k] fills k/8 of a cell from the bottom.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// tickSteps are the candidate spacings for x-axis labels.
var tickSteps = []int{1, 2, 5, 10, 20, 25, 50, 100}

// Bars renders d as a vertical bar chart with q_A on the horizontal axis and
// Ω_total on the vertical axis. A nil or empty distribution renders as "".
// When there are more q_A values than plot cells, adjacent values share one
// column drawn at the height of their largest Ω.
//
// Layout (top to bottom):
//
//	title
//	y-axis caption
//	Height plot rows, y labels at the peak and at the middle row
//	x-axis line with "0" in the gutter
//	q_A tick labels (0, the peak, q_total, and a regular step that fits)
//	x-axis caption
func Bars(d *joint.Distribution, opts Options) string {
	if d == nil || d.Len() == 0 {
		return ""
	}
	opts = opts.withSize()

	peakIdx, peak := d.Peak()
	levels := scale(d.Omega, peak, opts.Height*8)

	midRow, midOmega := midAxis(peak, opts.Height)
	yTop := FormatOmega(peak, 6)
	yMid := FormatOmega(midOmega, 6)
	gutter := max(ansi.StringWidth(yTop), ansi.StringWidth(yMid), 1)

	n := d.Len()
	cols, colW, barW := columns(n, opts.Width-gutter-2)
	levels = bucketMax(levels, cols)
	peakCol := peakIdx * cols / n
	plotW := cols * colW
	fullW := gutter + 2 + plotW

	var lines []string
	if opts.Title != "" {
		title := runewidth.Truncate(opts.Title, fullW, "…")
		lines = append(lines, lipgloss.PlaceHorizontal(fullW, lipgloss.Center, titleStyle.Render(title)))
	}
	if opts.YLabel != "" {
		lines = append(lines, labelStyle.Render(runewidth.Truncate(opts.YLabel, fullW, "…")))
	}

	for r := opts.Height - 1; r >= 0; r-- {
		var b strings.Builder
		switch r {
		case opts.Height - 1:
			b.WriteString(padLeft(yTop, gutter))
			b.WriteString(axisStyle.Render(" ┤"))
		case midRow:
			b.WriteString(padLeft(yMid, gutter))
			b.WriteString(axisStyle.Render(" ┤"))
		default:
			b.WriteString(strings.Repeat(" ", gutter))
			b.WriteString(axisStyle.Render(" │"))
		}
		for i, lvl := range levels {
			k := min(max(lvl-r*8, 0), 8)
			cell := strings.Repeat(string(eighths[k]), barW)
			if opts.HighlightPeak && i == peakCol {
				b.WriteString(peakStyle.Render(cell))
			} else {
				b.WriteString(barStyle.Render(cell))
			}
			b.WriteString(strings.Repeat(" ", colW-barW))
		}
		lines = append(lines, b.String())
	}

	lines = append(lines,
		padLeft("0", gutter)+axisStyle.Render(" └"+strings.Repeat("─", plotW)),
		strings.Repeat(" ", gutter+2)+labelStyle.Render(ticks(n, cols, peakIdx, colW, barW)),
	)
	if opts.XLabel != "" {
		xl := runewidth.Truncate(opts.XLabel, plotW, "…")
		lines = append(lines, strings.Repeat(" ", gutter+2)+
			lipgloss.PlaceHorizontal(plotW, lipgloss.Center, labelStyle.Render(xl)))
	}

	return strings.Join(lines, "\n")
}

// midAxis picks the labelled middle row and the Ω at its top edge. Row r
// (0 at the bottom) tops out at (r+1)/height of the peak. A one-row plot has
// no middle row and gets -1.
func midAxis(peak *big.Int, height int) (int, *big.Int) {
	row := height/2 - 1
	if row < 0 || peak == nil {
		return -1, nil
	}
	v := new(big.Int).Mul(peak, big.NewInt(int64(row+1)))

	return row, v.Quo(v, big.NewInt(int64(height)))
}

// scale maps every value to a bar height in eighths of a row, relative to
// peak. Non-zero values always get at least one eighth.
func scale(values []*big.Int, peak *big.Int, full int) []int {
	out := make([]int, len(values))
	if peak == nil || peak.Sign() == 0 {
		return out
	}
	var r big.Rat
	for i, v := range values {
		f, _ := r.SetFrac(v, peak).Float64()
		lvl := int(math.Round(f * float64(full)))
		if lvl == 0 && v.Sign() > 0 {
			lvl = 1
		}
		out[i] = min(lvl, full)
	}

	return out
}

// columns splits plotW cells between n bars and returns how many columns
// are drawn. Columns of three cells or more keep one blank cell as a gap.
// With fewer cells than bars every cell is one column covering several q_A.
func columns(n, plotW int) (cols, colW, barW int) {
	plotW = max(plotW, 1)
	if n > plotW {
		return plotW, 1, 1
	}
	colW = min(plotW/n, maxColumnWidth)
	barW = colW
	if colW >= 3 {
		barW = colW - 1
	}

	return n, colW, barW
}

// bucketMax folds levels into cols columns; value i lands in column
// i*cols/len(levels), and each column keeps its largest level.
func bucketMax(levels []int, cols int) []int {
	if cols >= len(levels) {
		return levels
	}
	out := make([]int, cols)
	for i, lvl := range levels {
		c := i * cols / len(levels)
		out[c] = max(out[c], lvl)
	}

	return out
}

// ticks lays out q_A labels under n values drawn in cols columns. The peak
// is placed first, then both ends, then every multiple of the smallest step
// whose labels fit; labels that would touch an earlier one are dropped.
func ticks(n, cols, peakIdx, colW, barW int) string {
	width := cols * colW
	line := []rune(strings.Repeat(" ", width))
	taken := make([]bool, width)

	place := func(idx int) {
		label := strconv.Itoa(idx)
		center := idx*cols/n*colW + (barW-1)/2
		start := min(max(center-(len(label)-1)/2, 0), width-len(label))
		if start < 0 {
			return
		}
		for j := max(start-1, 0); j < min(start+len(label)+1, width); j++ {
			if taken[j] {
				return
			}
		}
		for j, ch := range label {
			line[start+j] = ch
			taken[start+j] = true
		}
	}

	place(peakIdx)
	place(0)
	place(n - 1)

	// A step of s values spans s*cols*colW/n cells.
	labelW := len(strconv.Itoa(n-1)) + 1
	for _, step := range tickSteps {
		if step*cols*colW >= labelW*n {
			for idx := step; idx < n-1; idx += step {
				place(idx)
			}

			break
		}
	}

	return strings.TrimRight(string(line), " ")
}

// padLeft right-aligns s in a field of w cells.
func padLeft(s string, w int) string {
	if gap := w - ansi.StringWidth(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}

	return s
}
