package config

import "time"

// Config holds formfill configuration.
// Looked up at: ./config.yaml or $HOME/.formfill/config.yaml
type Config struct {
	// Renderer is the default output renderer name (text, html, page).
	Renderer string `mapstructure:"renderer" yaml:"renderer"`
	// OutputDir is where rendered documents and exports land when --out is
	// a bare file name.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// Respondent pre-fills the respondent identity for fill sessions.
	Respondent string `mapstructure:"respondent" yaml:"respondent"`
	// ThemeManifest points at a theme manifest used by the page renderer.
	ThemeManifest string `mapstructure:"theme_manifest" yaml:"theme_manifest"`
	// TimestampLayout formats the Submitted At column in CSV exports.
	TimestampLayout string `mapstructure:"timestamp_layout" yaml:"timestamp_layout"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Renderer:        "text",
		OutputDir:       ".",
		TimestampLayout: time.RFC3339,
	}
}
