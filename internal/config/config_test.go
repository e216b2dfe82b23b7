package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup location at temp dirs.
func isolate(t *testing.T) (configHome, dataHome string) {
	t.Helper()
	configHome = t.TempDir()
	dataHome = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("HOME", t.TempDir())
	for _, k := range []string{"CPE_DB", "CPE_ENDPOINT", "CPE_TIMEOUT", "CPE_MIN_LOADING", "CPE_AUTO_ADVANCE", "CPE_LOG_LEVEL", "CPE_LOG_FORMAT", "CPE_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return configHome, dataHome
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad_Defaults(t *testing.T) {
	_, dataHome := isolate(t)

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dataHome, "cpe", "cpe.db"), cfg.DB)
	assert.Equal(t, filepath.Join(dataHome, "cpe", "cpe.log"), cfg.Log.File)
	assert.Equal(t, "http://localhost:8000/career-profile-tool", cfg.Endpoint)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
	assert.Equal(t, 10*time.Second, cfg.MinLoading)
	assert.Equal(t, time.Second, cfg.AutoAdvance)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "http://localhost:8000/career-profile-tool/api/evaluate", cfg.Evaluation().Endpoint())
}

func TestLoad_FileThenEnv(t *testing.T) {
	configHome, _ := isolate(t)
	writeFile(t, filepath.Join(configHome, "cpe", "cpe.yaml"), `
endpoint: https://eval.example.com/career-profile-tool
timeout: 15s
min_loading: 2s
log:
  level: debug
  format: json
`)
	t.Setenv("CPE_TIMEOUT", "30s")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "https://eval.example.com/career-profile-tool", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.Timeout, "env overrides file")
	assert.Equal(t, 2*time.Second, cfg.MinLoading)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	dbPath := filepath.Join(t.TempDir(), "state.db")
	writeFile(t, path, "db: "+dbPath+"\nauto_advance: 0s\n")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, dbPath, cfg.DB)
	assert.Equal(t, time.Duration(0), cfg.AutoAdvance)
	assert.Equal(t, filepath.Join(filepath.Dir(dbPath), "cpe.log"), cfg.Log.File)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_OverrideBeatsEverything(t *testing.T) {
	isolate(t)
	t.Setenv("CPE_ENDPOINT", "http://env.example.com")

	v := New()
	v.Set(KeyEndpoint, "http://flag.example.com")
	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example.com", cfg.Endpoint)
}

func TestValidate(t *testing.T) {
	isolate(t)
	base, err := Load(New(), "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad endpoint", func(c *Config) { c.Endpoint = "not a url" }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"negative min loading", func(c *Config) { c.MinLoading = -time.Second }},
		{"negative auto advance", func(c *Config) { c.AutoAdvance = -time.Second }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
