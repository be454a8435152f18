package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/katalvlaran/einsolid/internal/config"
	"github.com/katalvlaran/einsolid/internal/tui"
	"github.com/katalvlaran/einsolid/multiplicity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// press sends one key to the model.
func press(t *testing.T, m *tui.Model, k tea.KeyMsg) tea.Cmd {
	t.Helper()
	next, cmd := m.Update(k)
	require.Same(t, m, next)

	return cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

// params collects the three slider values.
func params(m *tui.Model) [3]int {
	q, a, b := m.Params()
	return [3]int{q, a, b}
}

func TestNew_BuildsInitialDistribution(t *testing.T) {
	m := tui.New(config.Default(), nil)

	assert.Equal(t, [3]int{20, 10, 10}, params(m))
	require.NotNil(t, m.Distribution())
	assert.Equal(t, 21, m.Distribution().Len())
	assert.Nil(t, m.Init())
}

func TestUpdate_StepsFocusedSlider(t *testing.T) {
	m := tui.New(config.Default(), nil)

	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, [3]int{21, 10, 10}, params(m))
	assert.Equal(t, 22, m.Distribution().Len(), "distribution follows q_total")

	press(t, m, runes("j"))
	press(t, m, tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, [3]int{21, 20, 10}, params(m))

	press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	press(t, m, runes("h"))
	assert.Equal(t, [3]int{21, 20, 9}, params(m))
	assert.Equal(t, 20, m.Distribution().NA)
	assert.Equal(t, 9, m.Distribution().NB)
}

func TestUpdate_FocusWraps(t *testing.T) {
	m := tui.New(config.Default(), nil)

	press(t, m, tea.KeyMsg{Type: tea.KeyUp}) // wraps to N_B
	press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, [3]int{20, 10, 11}, params(m))

	press(t, m, tea.KeyMsg{Type: tea.KeyDown}) // wraps to q_total
	press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, [3]int{19, 10, 11}, params(m))
}

func TestUpdate_ClampsToLimits(t *testing.T) {
	m := tui.New(config.Default(), nil)

	press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 100, params(m)[0])
	press(t, m, runes("]"))
	assert.Equal(t, 100, params(m)[0], "stays at max")

	press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 1, params(m)[0])
	press(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 1, params(m)[0], "stays at min")

	press(t, m, runes("j"))
	press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 300, params(m)[1])
	assert.NoError(t, m.Distribution().Verify())
}

func TestUpdate_Reset(t *testing.T) {
	m := tui.New(config.Default(), nil)
	press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	press(t, m, runes("j"))
	press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	require.Equal(t, [3]int{100, 1, 10}, params(m))

	press(t, m, runes("r"))
	assert.Equal(t, [3]int{20, 10, 10}, params(m))
	assert.Equal(t, 21, m.Distribution().Len())
}

func TestUpdate_Quit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := tui.New(config.Default(), nil)
		cmd := press(t, m, k)
		require.NotNil(t, cmd, "key %q", k.String())
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestUpdate_InvalidLimitsSurfaceError(t *testing.T) {
	cfg := config.Default()
	cfg.Limits.NMin = 0
	cfg.Solids.NA = 1
	m := tui.New(cfg, nil)

	press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	press(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0, params(m)[1])
	assert.Nil(t, m.Distribution())
	assert.Contains(t, ansi.Strip(m.View()), multiplicity.ErrInvalidArgument.Error())
}

func TestView_ShowsSlidersChartAndStatus(t *testing.T) {
	m := tui.New(config.Default(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	out := ansi.Strip(m.View())

	assert.Contains(t, out, "Total Multiplicity of Two Interacting Einstein Solids")
	assert.Contains(t, out, "› Total Number of Quanta (q)")
	assert.Contains(t, out, "Number of Oscillators in Solid A (N_A)")
	assert.Contains(t, out, "Energy of Solid A (q_A)")
	assert.Contains(t, out, "peak q_A=10")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "q quit")
}

func TestView_ChartFitsWindowAtMaxQuanta(t *testing.T) {
	m := tui.New(config.Default(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	require.Equal(t, 100, params(m)[0])

	rows := 0
	for _, line := range strings.Split(ansi.Strip(m.View()), "\n") {
		if !strings.ContainsAny(line, "┤│└") {
			continue
		}
		rows++
		assert.LessOrEqual(t, ansi.StringWidth(line), 100, "%q", line)
	}
	assert.Equal(t, config.Default().Chart.Height+1, rows, "plot rows + x axis")
}
