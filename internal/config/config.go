package config

import (
	"fmt"
	"time"
)

// Config holds the complete application configuration
type Config struct {
	Version string        `yaml:"version" json:"version"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Data    DataConfig    `yaml:"data" json:"data"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// UIConfig configures the terminal UI
type UIConfig struct {
	Theme           string        `yaml:"theme" json:"theme"`                       // default|high-contrast|minimal
	SkipLogin       bool          `yaml:"skip_login" json:"skip_login"`             // start on the dashboard
	LoginDelay      time.Duration `yaml:"login_delay" json:"login_delay"`           // landing fade-out
	TransitionDelay time.Duration `yaml:"transition_delay" json:"transition_delay"` // screen fade-out
	SubmitDelay     time.Duration `yaml:"submit_delay" json:"submit_delay"`         // analog submit spinner
	KPIInterval     time.Duration `yaml:"kpi_interval" json:"kpi_interval"`         // landing KPI rotation
	Animations      bool          `yaml:"animations" json:"animations"`             // spinners and fades
}

// DataConfig configures where mock data comes from
type DataConfig struct {
	OverridePath string `yaml:"override_path" json:"override_path"` // YAML merged over the embedded data
	Watch        bool   `yaml:"watch" json:"watch"`                 // reload the override on change
}

// OutputConfig configures CLI output formatting
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"` // text|json|markdown|csv
	ColorMode     string `yaml:"color_mode" json:"color_mode"`         // auto|always|never
}

// LoggingConfig configures the component loggers
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"` // debug|info|warn|error
	File  string `yaml:"file" json:"file"`   // log file used while the TUI runs
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		UI: UIConfig{
			Theme:           "default",
			SkipLogin:       false,
			LoginDelay:      500 * time.Millisecond,
			TransitionDelay: 300 * time.Millisecond,
			SubmitDelay:     3 * time.Second,
			KPIInterval:     3500 * time.Millisecond,
			Animations:      true,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			ColorMode:     "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateUIConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	if err := c.validateLoggingConfig(); err != nil {
		return err
	}
	return nil
}

// validateUIConfig validates UI-related configuration
func (c *Config) validateUIConfig() error {
	if c.UI.Theme != "" {
		validThemes := map[string]bool{
			"default":       true,
			"high-contrast": true,
			"minimal":       true,
		}
		if !validThemes[c.UI.Theme] {
			return fmt.Errorf("invalid theme: %s (must be one of: default, high-contrast, minimal)", c.UI.Theme)
		}
	}
	delays := []struct {
		name  string
		value time.Duration
	}{
		{"login_delay", c.UI.LoginDelay},
		{"transition_delay", c.UI.TransitionDelay},
		{"submit_delay", c.UI.SubmitDelay},
		{"kpi_interval", c.UI.KPIInterval},
	}
	for _, d := range delays {
		if d.value < 0 {
			return fmt.Errorf("%s must be non-negative", d.name)
		}
	}
	if c.UI.KPIInterval > 0 && c.UI.KPIInterval < 100*time.Millisecond {
		return fmt.Errorf("kpi_interval must be at least 100ms")
	}
	return nil
}

// validateOutputConfig validates output-related configuration
func (c *Config) validateOutputConfig() error {
	if c.Output.DefaultFormat != "" {
		validFormats := map[string]bool{
			"json":     true,
			"text":     true,
			"markdown": true,
			"csv":      true,
		}
		if !validFormats[c.Output.DefaultFormat] {
			return fmt.Errorf("invalid output format: %s (must be one of: json, text, markdown, csv)", c.Output.DefaultFormat)
		}
	}
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			"auto":   true,
			"always": true,
			"never":  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}

// validateLoggingConfig validates logging-related configuration
func (c *Config) validateLoggingConfig() error {
	if c.Logging.Level != "" {
		validLevels := map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		}
		if !validLevels[c.Logging.Level] {
			return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.Logging.Level)
		}
	}
	return nil
}
