package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test-config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func isolatedLoader(paths ...string) *Loader {
	return &Loader{configPaths: paths, warn: &bytes.Buffer{}}
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	require.NotNil(t, loader)
	assert.Len(t, loader.configPaths, 3)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := isolatedLoader().LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
ui:
  theme: high-contrast
  skip_login: true
  submit_delay: 1s
output:
  default_format: json
logging:
  level: debug
`)

	cfg, err := isolatedLoader().LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "high-contrast", cfg.UI.Theme)
	assert.True(t, cfg.UI.SkipLogin)
	assert.Equal(t, time.Second, cfg.UI.SubmitDelay)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// keys missing from the file keep their defaults
	assert.True(t, cfg.UI.Animations)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.LoginDelay)
	assert.Equal(t, "auto", cfg.Output.ColorMode)
}

func TestLoadConfigSearchPathPriority(t *testing.T) {
	low := writeConfig(t, "ui:\n  theme: minimal\n  animations: false\n")
	high := writeConfig(t, "ui:\n  theme: high-contrast\n")

	cfg, err := isolatedLoader(high, low).LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "high-contrast", cfg.UI.Theme)
	assert.False(t, cfg.UI.Animations)
}

func TestLoadConfigBrokenSearchPathIsSkipped(t *testing.T) {
	broken := writeConfig(t, "ui: [not, a, map]\n")
	warn := &bytes.Buffer{}
	l := &Loader{configPaths: []string{broken}, warn: warn}

	cfg, err := l.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.Contains(t, warn.String(), "Failed to load config")
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"invalid yaml", "ui:\n  theme: [unclosed\n", "failed to parse YAML"},
		{"unknown key", "ai:\n  provider: ollama\n", "failed to parse YAML"},
		{"invalid value", "ui:\n  theme: neon\n", "configuration validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := isolatedLoader().LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLoadConfigEmptyFile(t *testing.T) {
	cfg, err := isolatedLoader().LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LAUNCHACCESS_UI_THEME", "minimal")
	t.Setenv("LAUNCHACCESS_UI_SKIP_LOGIN", "true")
	t.Setenv("LAUNCHACCESS_UI_KPI_INTERVAL", "2s")
	t.Setenv("LAUNCHACCESS_DATA_OVERRIDE_PATH", "/tmp/data.yaml")
	t.Setenv("LAUNCHACCESS_DATA_WATCH", "1")
	t.Setenv("LAUNCHACCESS_OUTPUT_DEFAULT_FORMAT", "csv")
	t.Setenv("LAUNCHACCESS_LOGGING_LEVEL", "WARN")

	cfg, err := isolatedLoader().LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "minimal", cfg.UI.Theme)
	assert.True(t, cfg.UI.SkipLogin)
	assert.Equal(t, 2*time.Second, cfg.UI.KPIInterval)
	assert.Equal(t, "/tmp/data.yaml", cfg.Data.OverridePath)
	assert.True(t, cfg.Data.Watch)
	assert.Equal(t, "csv", cfg.Output.DefaultFormat)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestApplyEnvOverridesBeatFiles(t *testing.T) {
	t.Setenv("LAUNCHACCESS_UI_THEME", "minimal")
	cfg, err := isolatedLoader().LoadConfig(writeConfig(t, "ui:\n  theme: high-contrast\n"))
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.UI.Theme)
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := map[string]string{
		"LAUNCHACCESS_UI_SKIP_LOGIN":  "maybe",
		"LAUNCHACCESS_UI_LOGIN_DELAY": "soon",
		"LAUNCHACCESS_DATA_WATCH":     "2",
	}
	for env, value := range tests {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, value)
			_, err := isolatedLoader().LoadConfig("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), env)
		})
	}
}

func TestParseHelpers(t *testing.T) {
	var d time.Duration
	require.NoError(t, parseDuration("250ms", &d))
	assert.Equal(t, 250*time.Millisecond, d)
	assert.Error(t, parseDuration("later", &d))

	var b bool
	require.NoError(t, parseBool("TRUE", &b))
	assert.True(t, b)
	assert.Error(t, parseBool("yes please", &b))
}

func TestFindConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, os.WriteFile(".launchaccess.yaml", []byte("version: \"1.0\"\n"), 0o600))
	path, found := FindConfigFile()
	assert.True(t, found)
	assert.Equal(t, "./.launchaccess.yaml", path)
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()
	require.Len(t, paths, 3)
	assert.Equal(t, "./.launchaccess.yaml", paths[0])
	assert.NotContains(t, paths[1], "~")
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"config.yaml", false},
		{"/home/user/.launchaccess.yml", false},
		{"../config.yaml", true},
		{"config.json", true},
		{"/proc/self/config.yaml", true},
	}
	for _, tt := range tests {
		err := validateConfigPath(tt.path)
		assert.Equal(t, tt.wantErr, err != nil, tt.path)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a.yaml"), ExpandPath("~/a.yaml"))
	assert.Equal(t, "/etc/a.yaml", ExpandPath("/etc/a.yaml"))
}
