package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/einsolid/chart"
	"github.com/katalvlaran/einsolid/internal/config"
	"github.com/katalvlaran/einsolid/joint"
)

// runMode holds the flags that pick what main does after loading config.
type runMode struct {
	plain bool
	table bool
}

// parseFlags applies -q, -a and -b on top of cfg, then validates the result
// against the configured limits.
func parseFlags(fs *flag.FlagSet, args []string, cfg config.Config) (config.Config, runMode, error) {
	q := fs.Int("q", cfg.Solids.QTotal, "total number of quanta shared by the two solids")
	nA := fs.Int("a", cfg.Solids.NA, "number of oscillators in solid A")
	nB := fs.Int("b", cfg.Solids.NB, "number of oscillators in solid B")
	plain := fs.Bool("plain", false, "print the chart once to stdout and exit")
	table := fs.Bool("table", false, "with -plain, also print one row per split")
	if err := fs.Parse(args); err != nil {
		return cfg, runMode{}, err
	}

	cfg.Solids = config.SolidsConfig{QTotal: *q, NA: *nA, NB: *nB}
	if err := cfg.Validate(); err != nil {
		return cfg, runMode{}, err
	}

	return cfg, runMode{plain: *plain, table: *table}, nil
}

// runPlain builds the distribution once and writes the chart (and optionally
// the per-split table) to w.
func runPlain(w io.Writer, cfg config.Config, table bool) error {
	opts := []joint.Option{joint.WithVerify()}
	if cfg.Chart.Memo {
		opts = append(opts, joint.WithMemo())
	}
	s := cfg.Solids
	d, err := joint.Build(s.QTotal, s.NA, s.NB, opts...)
	if err != nil {
		return fmt.Errorf("build distribution: %w", err)
	}

	chartOpts := chart.DefaultOptions()
	chartOpts.Height = cfg.Chart.Height
	if _, err := fmt.Fprintln(w, chart.Bars(d, chartOpts)); err != nil {
		return err
	}
	if table {
		if _, err := fmt.Fprintf(w, "\n%s\n", chart.Table(d, chart.DefaultWidth)); err != nil {
			return err
		}
	}

	return nil
}

// newLogger builds the slog logger described by cfg. Without a path, logs go
// to stderr, except in interactive mode where the terminal belongs to the
// view and logs are discarded. The returned func closes the log file, if any.
func newLogger(cfg config.LogConfig, interactive bool) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if cfg.Path == "" {
		if interactive {
			return slog.New(slog.DiscardHandler), func() {}, nil
		}
		return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return slog.New(slog.NewTextHandler(f, handlerOpts)), func() { _ = f.Close() }, nil
}
