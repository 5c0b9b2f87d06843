package config

import "fmt"

// Config holds the complete application configuration
type Config struct {
	Version  string         `yaml:"version" json:"version"`
	Compress CompressConfig `yaml:"compress" json:"compress"`
	Output   OutputConfig   `yaml:"output" json:"output"`
}

// CompressConfig tunes the pattern mining engine
type CompressConfig struct {
	EntropyThreshold float64 `yaml:"entropy_threshold" json:"entropy_threshold"` // bits; columns above it classify variable
	ExemplarCap      int     `yaml:"exemplar_cap" json:"exemplar_cap"`           // sample values kept per placeholder
	MaxLines         int     `yaml:"max_lines" json:"max_lines"`                 // maximum input lines per run
	MaxLineLength    int     `yaml:"max_line_length" json:"max_line_length"`     // scanner buffer size in bytes
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
	Verbose       bool   `yaml:"verbose" json:"verbose"`               // default verbosity
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Compress: CompressConfig{
			EntropyThreshold: 1.5,
			ExemplarCap:      5,
			MaxLines:         1000000,
			MaxLineLength:    1024 * 1024, // 1MB
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
			Verbose:       false,
		},
	}
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if c.Compress.EntropyThreshold < 0 {
		return fmt.Errorf("invalid entropy threshold: %v (must be >= 0)", c.Compress.EntropyThreshold)
	}
	if c.Compress.ExemplarCap < 1 {
		return fmt.Errorf("invalid exemplar cap: %d (must be >= 1)", c.Compress.ExemplarCap)
	}
	if c.Compress.MaxLines < 1 {
		return fmt.Errorf("invalid max lines: %d (must be >= 1)", c.Compress.MaxLines)
	}
	if c.Compress.MaxLineLength < 1 {
		return fmt.Errorf("invalid max line length: %d (must be >= 1)", c.Compress.MaxLineLength)
	}

	switch c.Output.DefaultFormat {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, markdown)", c.Output.DefaultFormat)
	}

	switch c.Output.ColorMode {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
	}

	return nil
}

// SampleConfig returns a fully commented configuration file template
func SampleConfig() string {
	return `# LogPress configuration file
version: "1.0"

compress:
  # Shannon entropy (bits) above which a token column is treated as
  # variable and replaced by a positional placeholder.
  entropy_threshold: 1.5
  # Sample values retained per placeholder for the exemplar line.
  exemplar_cap: 5
  # Input limits.
  max_lines: 1000000
  max_line_length: 1048576

output:
  # Default output format: text, json, markdown
  default_format: text
  # Color mode for the statistics footer: auto, always, never
  color_mode: auto
  # Verbose diagnostics on stderr
  verbose: false
`
}

// MinimalSampleConfig returns a compact configuration file template
func MinimalSampleConfig() string {
	return `version: "1.0"
compress:
  entropy_threshold: 1.5
  exemplar_cap: 5
output:
  default_format: text
`
}
