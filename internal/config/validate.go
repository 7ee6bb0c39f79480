package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/canopy-esg/canopy/internal/output"
	"github.com/canopy-esg/canopy/internal/view"
)

// Validate checks all fields in the config and returns all errors at once.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.DefaultTab != "" {
		if _, err := view.ParseTab(cfg.DefaultTab); err != nil {
			errs = append(errs, fmt.Sprintf("default_tab: %v", err))
		}
	}

	if cfg.DefaultPeriod != "" {
		if _, err := view.ParsePeriod(cfg.DefaultPeriod); err != nil {
			errs = append(errs, fmt.Sprintf("default_period: %v", err))
		}
	}

	if cfg.OutputFormat != "" {
		if _, err := output.GetFormatter(cfg.OutputFormat); err != nil {
			errs = append(errs, fmt.Sprintf("output_format: %v", err))
		}
	}

	if cfg.Serve.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Serve.Addr); err != nil {
			errs = append(errs, fmt.Sprintf("serve.addr: %v", err))
		}
	}
	if cfg.Serve.MetricsAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.Serve.MetricsAddr); err != nil {
			errs = append(errs, fmt.Sprintf("serve.metrics_addr: %v", err))
		} else if cfg.Serve.MetricsAddr == cfg.Serve.Addr {
			errs = append(errs, fmt.Sprintf("serve.metrics_addr: must differ from serve.addr (%s)", cfg.Serve.Addr))
		}
	}

	if cfg.Narrative.MaxTokens < 0 {
		errs = append(errs, fmt.Sprintf("narrative.max_tokens: must be non-negative, got %d", cfg.Narrative.MaxTokens))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// ViewState returns the startup view state named by DefaultTab and
// DefaultPeriod. Empty fields keep the built-in initial state.
func (c *Config) ViewState() (view.State, error) {
	s := view.InitialState()
	if c.DefaultTab != "" {
		t, err := view.ParseTab(c.DefaultTab)
		if err != nil {
			return s, fmt.Errorf("default_tab: %w", err)
		}
		s.Tab = t
	}
	if c.DefaultPeriod != "" {
		p, err := view.ParsePeriod(c.DefaultPeriod)
		if err != nil {
			return s, fmt.Errorf("default_period: %w", err)
		}
		s.Period = p
	}
	return s, nil
}
