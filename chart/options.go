package chart

// Defaults used when an Options field is left at its zero value.
const (
	DefaultWidth  = 80
	DefaultHeight = 16

	DefaultTitle  = "Total Multiplicity of Two Interacting Einstein Solids"
	DefaultXLabel = "Energy of Solid A (q_A)"
	DefaultYLabel = "Total Multiplicity (Omega_Total)"

	// maxColumnWidth caps how wide one q_A column grows on small sweeps.
	maxColumnWidth = 6
)

// Options configures Bars.
//
// Fields:
//   - Width         — total width in cells, y-axis gutter included.
//   - Height        — plot height in rows (each row resolves 8 sub-steps).
//   - Title, XLabel, YLabel — captions; empty strings are omitted.
//   - HighlightPeak — draw the most probable split in the accent color.
type Options struct {
	Width         int
	Height        int
	Title         string
	XLabel        string
	YLabel        string
	HighlightPeak bool
}

// DefaultOptions returns the default captions and size.
func DefaultOptions() Options {
	return Options{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		Title:         DefaultTitle,
		XLabel:        DefaultXLabel,
		YLabel:        DefaultYLabel,
		HighlightPeak: true,
	}
}

// withSize fills non-positive sizes with defaults; captions are left alone.
func (o Options) withSize() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}

	return o
}
