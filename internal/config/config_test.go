package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.LoginDelay)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.TransitionDelay)
	assert.Equal(t, 3*time.Second, cfg.UI.SubmitDelay)
	assert.Equal(t, 3500*time.Millisecond, cfg.UI.KPIInterval)
	assert.True(t, cfg.UI.Animations)
	assert.Equal(t, "text", cfg.Output.DefaultFormat)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:   "zero config",
			mutate: func(c *Config) { *c = Config{} },
		},
		{
			name:   "invalid theme",
			mutate: func(c *Config) { c.UI.Theme = "neon" },
			errMsg: "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:   "negative login delay",
			mutate: func(c *Config) { c.UI.LoginDelay = -time.Second },
			errMsg: "login_delay must be non-negative",
		},
		{
			name:   "negative submit delay",
			mutate: func(c *Config) { c.UI.SubmitDelay = -time.Second },
			errMsg: "submit_delay must be non-negative",
		},
		{
			name:   "kpi interval too short",
			mutate: func(c *Config) { c.UI.KPIInterval = time.Millisecond },
			errMsg: "kpi_interval must be at least 100ms",
		},
		{
			name:   "invalid output format",
			mutate: func(c *Config) { c.Output.DefaultFormat = "xml" },
			errMsg: "invalid output format: xml (must be one of: json, text, markdown, csv)",
		},
		{
			name:   "invalid color mode",
			mutate: func(c *Config) { c.Output.ColorMode = "sometimes" },
			errMsg: "invalid color mode: sometimes (must be one of: auto, always, never)",
		},
		{
			name:   "invalid log level",
			mutate: func(c *Config) { c.Logging.Level = "trace" },
			errMsg: "invalid log level: trace (must be one of: debug, info, warn, error)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.errMsg)
		})
	}
}

func TestSampleConfigsParse(t *testing.T) {
	for name, content := range map[string]string{
		"full":    SampleConfig(),
		"minimal": MinimalSampleConfig(),
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			require.NoError(t, yaml.Unmarshal([]byte(content), cfg))
			assert.NoError(t, cfg.Validate())
			assert.Equal(t, "default", cfg.UI.Theme)
		})
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(SampleConfig()), &cfg))
	assert.Equal(t, *DefaultConfig(), cfg)
}
