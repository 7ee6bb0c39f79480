// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/canopy-esg/canopy/internal/config"
	canopylog "github.com/canopy-esg/canopy/internal/log"
	"github.com/canopy-esg/canopy/internal/server"
)

// Serve-specific flag values.
var (
	serveAddr        string
	serveMetricsAddr string
	serveLogJSON     bool
)

// serveCmd runs the HTTP dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Serve the ESG dashboard as an HTML page with a small JSON API.

The page at / follows ?tab= and ?period=. The API offers GET /api/state,
POST /api/tab, POST /api/period, GET /api/scores and GET /api/panel.
With --metrics-addr, Prometheus metrics are served at /metrics on a
separate listener. The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+config.DefaultAddr+")")
	serveCmd.Flags().StringVar(&serveMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "write logs as JSON")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if serveLogJSON {
		canopylog.SetupJSON(verbose, quiet)
	}

	cfg, err := effectiveConfig(&config.Config{
		NoColor: noColor,
		Serve:   config.ServeConfig{Addr: serveAddr, MetricsAddr: serveMetricsAddr},
	})
	if err != nil {
		return err
	}
	state, err := startState(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Options{
		Addr:         cfg.Serve.Addr,
		MetricsAddr:  cfg.Serve.MetricsAddr,
		InitialState: state,
	})
	if err != nil {
		return exitError(ExitInvalidArgs, "canopy: %v", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting dashboard", "addr", cfg.Serve.Addr, "metrics_addr", cfg.Serve.MetricsAddr,
		"tab", state.Tab, "period", state.Period)
	if err := srv.Run(ctx); err != nil {
		return exitError(ExitInvalidArgs, "canopy: serve failed (%v)", err)
	}
	return nil
}
