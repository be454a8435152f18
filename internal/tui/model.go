// Package tui is the interactive front end: three sliders for q_total, N_A
// and N_B, and a bar chart of the joint multiplicity that is rebuilt on
// every change.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/einsolid/internal/config"
	"github.com/katalvlaran/einsolid/joint"
)

// Slider indices.
const (
	sliderQ = iota
	sliderNA
	sliderNB
	sliderCount
)

// Model ties the sliders to the distribution they describe.
type Model struct {
	cfg     config.Config
	log     *slog.Logger
	keys    keyMap
	sliders [sliderCount]slider
	focus   int
	width   int

	dist     *joint.Distribution
	err      error
	verified bool
}

// New returns a Model seeded from cfg with the distribution already built.
// A nil logger discards output.
func New(cfg config.Config, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l := cfg.Limits
	s := cfg.Solids
	m := &Model{
		cfg:  cfg,
		log:  logger,
		keys: defaultKeyMap(),
		sliders: [sliderCount]slider{
			sliderQ:  {label: "Total Number of Quanta (q)", value: s.QTotal, initial: s.QTotal, min: l.QMin, max: l.QMax},
			sliderNA: {label: "Number of Oscillators in Solid A (N_A)", value: s.NA, initial: s.NA, min: l.NMin, max: l.NMax},
			sliderNB: {label: "Number of Oscillators in Solid B (N_B)", value: s.NB, initial: s.NB, min: l.NMin, max: l.NMax},
		},
	}
	m.recompute()

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey moves focus or edits the focused slider.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := &m.sliders[m.focus]
	changed := false

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + sliderCount - 1) % sliderCount
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % sliderCount
	case key.Matches(msg, m.keys.Dec):
		changed = s.step(-m.cfg.Limits.Step)
	case key.Matches(msg, m.keys.Inc):
		changed = s.step(m.cfg.Limits.Step)
	case key.Matches(msg, m.keys.BigDec):
		changed = s.step(-m.cfg.Limits.BigStep)
	case key.Matches(msg, m.keys.BigInc):
		changed = s.step(m.cfg.Limits.BigStep)
	case key.Matches(msg, m.keys.Min):
		changed = s.set(s.min)
	case key.Matches(msg, m.keys.Max):
		changed = s.set(s.max)
	case key.Matches(msg, m.keys.Reset):
		for i := range m.sliders {
			if m.sliders[i].set(m.sliders[i].initial) {
				changed = true
			}
		}
	}
	if changed {
		m.recompute()
	}

	return m, nil
}

// recompute rebuilds the distribution from the current slider values.
func (m *Model) recompute() {
	q, nA, nB := m.Params()
	var opts []joint.Option
	if m.cfg.Chart.Memo {
		opts = append(opts, joint.WithMemo())
	}

	d, err := joint.Build(q, nA, nB, opts...)
	if err != nil {
		m.dist, m.err, m.verified = nil, err, false
		m.log.Error("[TUI] build distribution", "q_total", q, "n_a", nA, "n_b", nB, "error", err)

		return
	}
	m.dist, m.err = d, nil
	m.verified = d.Verify() == nil

	peak, _ := d.Peak()
	m.log.Debug("[TUI] distribution rebuilt", "q_total", q, "n_a", nA, "n_b", nB, "peak_q_a", peak, "verified", m.verified)
}

// Params returns the current (q_total, N_A, N_B).
func (m *Model) Params() (qTotal, nA, nB int) {
	return m.sliders[sliderQ].value, m.sliders[sliderNA].value, m.sliders[sliderNB].value
}

// Distribution returns the distribution for the current parameters, or nil
// if the last build failed.
func (m *Model) Distribution() *joint.Distribution { return m.dist }
