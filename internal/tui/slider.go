package tui

import "math"

// slider is a bounded integer input.
type slider struct {
	label   string
	value   int
	initial int
	min     int
	max     int
}

// set clamps v into [min, max] and reports whether the value changed.
func (s *slider) set(v int) bool {
	v = min(max(v, s.min), s.max)
	if v == s.value {
		return false
	}
	s.value = v

	return true
}

// step moves the value by delta, clamped.
func (s *slider) step(delta int) bool { return s.set(s.value + delta) }

// knob returns the knob position on a track of width cells.
func (s *slider) knob(width int) int {
	if s.max <= s.min || width <= 1 {
		return 0
	}
	frac := float64(s.value-s.min) / float64(s.max-s.min)

	return int(math.Round(frac * float64(width-1)))
}
