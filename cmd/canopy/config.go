package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/canopy-esg/canopy/internal/config"
)

// Config command flags.
var (
	configGlobal bool
	configForce  bool
	configFlat   bool
)

// configCmd is the parent command for config subcommands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and modify canopy configuration",
	Long: `View and modify canopy configuration.

Canopy reads .canopy.yaml from the working directory. A global config at
~/.config/canopy/config.yaml provides defaults, and CANOPY_ environment
variables override both (CANOPY_SERVE__ADDR sets serve.addr).

Note: config set does a YAML round-trip and will not preserve comments.`,
}

// configInitCmd writes a starter .canopy.yaml.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .canopy.yaml",
	Long: `Write a .canopy.yaml containing the built-in defaults to the working
directory. Existing files are left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration canopy would run with: defaults, then the global
file, then .canopy.yaml, then CANOPY_ environment variables.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configValidateCmd checks the effective configuration.
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration for errors",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

// configGetCmd retrieves a configuration value by dot-notation key path.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get an effective configuration value by dot-notation key path.

Examples:
  canopy config get default_period
  canopy config get serve.addr
  canopy config get serve`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the config file.

Values are auto-detected as bool, int, float, or string. By default, writes
to .canopy.yaml in the current directory. Use --global to write to
~/.config/canopy/config.yaml.

Examples:
  canopy config set default_tab metrics
  canopy config set serve.metrics_addr 127.0.0.1:9090
  canopy config set --global no_color true`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite an existing .canopy.yaml")
	configShowCmd.Flags().BoolVar(&configFlat, "flat", false, "print key = value lines instead of YAML")
	configSetCmd.Flags().BoolVar(&configGlobal, "global", false, "write to global config (~/.config/canopy/config.yaml)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := filepath.Join(configDir, config.FileName)
	if _, err := os.Stat(path); err == nil && !configForce {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s already exists (use --force to overwrite)\n", path)
		return nil
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return exitError(ExitInvalidArgs, "canopy: cannot stat %s (%v)", path, err)
	}

	f, err := os.Create(path) //nolint:gosec // fixed file name in the working directory
	if err != nil {
		return exitError(ExitRenderFailure, "canopy: cannot create %s (%v)", path, err)
	}
	if err := config.Write(f, config.Default()); err != nil {
		_ = f.Close()
		return exitError(ExitRenderFailure, "canopy: write %s (%v)", path, err)
	}
	if err := f.Close(); err != nil {
		return exitError(ExitRenderFailure, "canopy: write %s (%v)", path, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("created"), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return exitError(ExitInvalidArgs, "canopy: failed to load %s (%v)", config.FileName, err)
	}
	w := cmd.OutOrStdout()
	if !configFlat {
		return config.Write(w, cfg)
	}

	flat, err := config.Flatten(cfg)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "%s = %v\n", k, flat[k])
	}
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return exitError(ExitInvalidArgs, "canopy: failed to load %s (%v)", config.FileName, err)
	}
	if err := config.Validate(cfg); err != nil {
		return exitError(ExitInvalidArgs, "canopy: %v", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s configuration is valid\n", color.GreenString("ok"))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	val, err := config.GetValue(cfg, args[0])
	if err != nil {
		return err
	}
	return printValue(cmd, val)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	keyPath, rawValue := args[0], args[1]
	if err := config.ValidateKeyPath(keyPath); err != nil {
		return err
	}

	targetPath := filepath.Join(configDir, config.FileName)
	if configGlobal {
		targetPath = config.GlobalConfigPath()
	}

	data, err := config.LoadRaw(targetPath)
	if err != nil {
		return fmt.Errorf("loading config file: %w", err)
	}
	if err := config.SetValue(data, keyPath, rawValue); err != nil {
		return fmt.Errorf("setting value: %w", err)
	}

	// Round-trip validate before touching the file.
	roundTrip, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	var validCfg config.Config
	if err := yaml.Unmarshal(roundTrip, &validCfg); err != nil {
		return fmt.Errorf("invalid config after set: %w", err)
	}
	if err := config.Validate(&validCfg); err != nil {
		return err
	}

	if err := config.WriteFile(targetPath, data); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", keyPath, rawValue)
	return nil
}

// printValue outputs a value: scalars as plain text, maps as YAML.
func printValue(cmd *cobra.Command, val any) error {
	switch v := val.(type) {
	case map[string]any, []any:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	default:
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), v)
	}
	return nil
}
