// Package config handles .canopy.yaml configuration files.
package config

// Config represents the contents of a .canopy.yaml file.
type Config struct {
	DefaultTab    string          `yaml:"default_tab,omitempty" koanf:"default_tab"`
	DefaultPeriod string          `yaml:"default_period,omitempty" koanf:"default_period"`
	OutputFormat  string          `yaml:"output_format,omitempty" koanf:"output_format"`
	NoColor       bool            `yaml:"no_color,omitempty" koanf:"no_color"`
	Serve         ServeConfig     `yaml:"serve,omitempty" koanf:"serve"`
	Narrative     NarrativeConfig `yaml:"narrative,omitempty" koanf:"narrative"`
}

// ServeConfig holds the HTTP dashboard settings.
type ServeConfig struct {
	Addr        string `yaml:"addr,omitempty" koanf:"addr"`
	MetricsAddr string `yaml:"metrics_addr,omitempty" koanf:"metrics_addr"`
}

// NarrativeConfig holds the executive summary settings.
type NarrativeConfig struct {
	Model     string `yaml:"model,omitempty" koanf:"model"`
	MaxTokens int    `yaml:"max_tokens,omitempty" koanf:"max_tokens"`
}

// FileName is the expected config file name in the working directory.
const FileName = ".canopy.yaml"

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: CANOPY_SERVE__ADDR sets serve.addr.
const EnvPrefix = "CANOPY_"

// Built-in defaults.
const (
	DefaultTab          = "dashboard"
	DefaultPeriod       = "2024-Q4"
	DefaultOutputFormat = "text"
	DefaultAddr         = "127.0.0.1:8080"
	DefaultMaxTokens    = 1024
)

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		DefaultTab:    DefaultTab,
		DefaultPeriod: DefaultPeriod,
		OutputFormat:  DefaultOutputFormat,
		Serve:         ServeConfig{Addr: DefaultAddr},
		Narrative:     NarrativeConfig{MaxTokens: DefaultMaxTokens},
	}
}
