package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrOutOfRange indicates a setting outside its allowed interval.
var ErrOutOfRange = errors.New("config: value out of range")

// ErrBadLogLevel indicates an unknown log level name.
var ErrBadLogLevel = errors.New("config: unknown log level")

// Validate checks limits first, then the initial values against them.
func (c Config) Validate() error {
	l := c.Limits
	switch {
	case l.QMin < 0 || l.QMin > l.QMax:
		return fmt.Errorf("limits.q_min=%d, limits.q_max=%d: need 0 <= q_min <= q_max: %w", l.QMin, l.QMax, ErrOutOfRange)
	case l.NMin < 1 || l.NMin > l.NMax:
		return fmt.Errorf("limits.n_min=%d, limits.n_max=%d: need 1 <= n_min <= n_max: %w", l.NMin, l.NMax, ErrOutOfRange)
	case l.Step < 1 || l.BigStep < l.Step:
		return fmt.Errorf("limits.step=%d, limits.big_step=%d: need 1 <= step <= big_step: %w", l.Step, l.BigStep, ErrOutOfRange)
	}

	s := c.Solids
	if err := within("solids.q_total", s.QTotal, l.QMin, l.QMax); err != nil {
		return err
	}
	if err := within("solids.n_a", s.NA, l.NMin, l.NMax); err != nil {
		return err
	}
	if err := within("solids.n_b", s.NB, l.NMin, l.NMax); err != nil {
		return err
	}
	if c.Chart.Height < 1 {
		return fmt.Errorf("chart.height=%d: need >= 1: %w", c.Chart.Height, ErrOutOfRange)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error", case-insensitive).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", l.Level, ErrBadLogLevel)
	}

	return lvl, nil
}

// within reports whether v lies in [lo, hi].
func within(key string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s=%d outside [%d, %d]: %w", key, v, lo, hi, ErrOutOfRange)
	}

	return nil
}
