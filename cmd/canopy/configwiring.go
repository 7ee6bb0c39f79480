package main

import (
	"log/slog"

	"github.com/fatih/color"

	"github.com/canopy-esg/canopy/internal/config"
	"github.com/canopy-esg/canopy/internal/view"
)

// configDir is where .canopy.yaml is read from. Tests point it elsewhere.
var configDir = "."

// effectiveConfig loads the file and environment configuration, lets the
// non-zero fields of cli override it, and validates the result.
func effectiveConfig(cli *config.Config) (*config.Config, error) {
	fileCfg, err := config.Load(configDir)
	if err != nil {
		return nil, exitError(ExitInvalidArgs, "canopy: failed to load %s (%v)", config.FileName, err)
	}

	cfg := config.Merge(fileCfg, cli)
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidArgs, "canopy: %v", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	slog.Debug("effective config",
		"tab", cfg.DefaultTab,
		"period", cfg.DefaultPeriod,
		"format", cfg.OutputFormat,
	)
	return cfg, nil
}

// startState is the view state a command starts in.
func startState(cfg *config.Config) (view.State, error) {
	s, err := cfg.ViewState()
	if err != nil {
		return s, exitError(ExitInvalidArgs, "canopy: %v", err)
	}
	return s, nil
}
