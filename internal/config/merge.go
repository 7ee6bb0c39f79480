package config

// Merge combines file-based config with values taken from CLI flags.
// CLI values take precedence; zero-value CLI fields fall through to the
// file config.
func Merge(fileCfg, cliCfg *Config) *Config {
	result := *fileCfg
	if cliCfg == nil {
		return &result
	}

	if cliCfg.DefaultTab != "" {
		result.DefaultTab = cliCfg.DefaultTab
	}
	if cliCfg.DefaultPeriod != "" {
		result.DefaultPeriod = cliCfg.DefaultPeriod
	}
	if cliCfg.OutputFormat != "" {
		result.OutputFormat = cliCfg.OutputFormat
	}
	// NoColor: either source can turn color off.
	if cliCfg.NoColor {
		result.NoColor = true
	}
	if cliCfg.Serve.Addr != "" {
		result.Serve.Addr = cliCfg.Serve.Addr
	}
	if cliCfg.Serve.MetricsAddr != "" {
		result.Serve.MetricsAddr = cliCfg.Serve.MetricsAddr
	}
	if cliCfg.Narrative.Model != "" {
		result.Narrative.Model = cliCfg.Narrative.Model
	}
	if cliCfg.Narrative.MaxTokens > 0 {
		result.Narrative.MaxTokens = cliCfg.Narrative.MaxTokens
	}
	return &result
}
