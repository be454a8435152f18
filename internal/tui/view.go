package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/einsolid/chart"
)

const (
	trackWidth = 30
	intro      = "Use the sliders below to adjust the parameters and visualize the total multiplicity of two interacting Einstein solids."
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(chart.ColorPeach)
	introStyle   = lipgloss.NewStyle().Foreground(chart.ColorSubtext0)
	labelStyle   = lipgloss.NewStyle().Foreground(chart.ColorText)
	focusStyle   = lipgloss.NewStyle().Bold(true).Foreground(chart.ColorBlue)
	filledStyle  = lipgloss.NewStyle().Foreground(chart.ColorBlue)
	emptyStyle   = lipgloss.NewStyle().Foreground(chart.ColorSurface2)
	statusStyle  = lipgloss.NewStyle().Foreground(chart.ColorText)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	helpKeyStyle = lipgloss.NewStyle().Foreground(chart.ColorSubtext0)
	helpSepStyle = lipgloss.NewStyle().Foreground(chart.ColorOverlay1)
)

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = chart.DefaultWidth
	}

	sections := []string{
		headerStyle.Render(chart.DefaultTitle),
		introStyle.Width(width).Render(intro),
		"",
		m.renderSliders(),
		"",
	}

	if m.err != nil {
		sections = append(sections, errorStyle.Render("error: "+m.err.Error()))
	} else {
		opts := chart.DefaultOptions()
		opts.Width = width
		opts.Height = m.cfg.Chart.Height
		opts.Title = ""
		sections = append(sections, chart.Bars(m.dist, opts), "", m.renderStatus())
	}
	sections = append(sections, "", m.renderHelp())

	return strings.Join(sections, "\n")
}

// renderSliders draws one line per slider; the focused one is marked.
func (m *Model) renderSliders() string {
	labelW := 0
	for _, s := range m.sliders {
		labelW = max(labelW, lipgloss.Width(s.label))
	}

	lines := make([]string, len(m.sliders))
	for i, s := range m.sliders {
		cursor, style := "  ", labelStyle
		if i == m.focus {
			cursor, style = "› ", focusStyle
		}
		k := s.knob(trackWidth)
		track := filledStyle.Render(strings.Repeat("━", k)) +
			style.Render("●") +
			emptyStyle.Render(strings.Repeat("─", trackWidth-k-1))
		lines[i] = fmt.Sprintf("%s%s  %s %s",
			cursor,
			style.Render(s.label+strings.Repeat(" ", labelW-lipgloss.Width(s.label))),
			track,
			style.Render(fmt.Sprintf("%3d", s.value)))
	}

	return strings.Join(lines, "\n")
}

// renderStatus summarizes the peak and the sum check.
func (m *Model) renderStatus() string {
	qA, omega := m.dist.Peak()
	p := m.dist.Probabilities()[qA]
	check := "Σ Ω_total = Ω(q, N_A+N_B) ✓"
	if !m.verified {
		check = "Σ Ω_total ≠ Ω(q, N_A+N_B) ✗"
	}

	return statusStyle.Render(fmt.Sprintf("peak q_A=%d  P=%.2f%%  Ω_total=%s  total=%s  %s",
		qA, p*100, chart.FormatOmega(omega, 12), chart.FormatOmega(m.dist.Total(), 12), check))
}

// renderHelp lists the key bindings.
func (m *Model) renderHelp() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, helpKeyStyle.Render(h.Key)+" "+h.Desc)
	}

	return strings.Join(parts, helpSepStyle.Render(" • "))
}
