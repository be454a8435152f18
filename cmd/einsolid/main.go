// Command einsolid explores the multiplicity of two interacting Einstein
// solids. By default it opens an interactive view with sliders for q_total,
// N_A and N_B; -plain prints the chart once and exits.
package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/einsolid/internal/config"
	"github.com/katalvlaran/einsolid/internal/tui"
)

func main() {
	// Load env
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	cfg, mode, err := parseFlags(flag.CommandLine, os.Args[1:], cfg)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg.Log, !mode.plain)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	if mode.plain {
		if err := runPlain(os.Stdout, cfg, mode.table); err != nil {
			logger.Error("[MAIN] plain render failed", "error", err)
			closeLog()
			os.Exit(1)
		}
		return
	}

	logger.Info("[MAIN] starting interactive view",
		"q_total", cfg.Solids.QTotal, "n_a", cfg.Solids.NA, "n_b", cfg.Solids.NB)
	if _, err := tea.NewProgram(tui.New(cfg, logger), tea.WithAltScreen()).Run(); err != nil {
		logger.Error("[MAIN] interactive view failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}
