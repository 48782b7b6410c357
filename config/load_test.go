package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
env: prod
http:
  addr: ":8080"
  readTimeout: 2s
metrics:
  addr: ""
log:
  level: warn
  format: console
reload:
  enabled: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	// untouched keys keep their defaults
	assert.Equal(t, 10*time.Second, cfg.HTTP.WriteTimeout)
	assert.Equal(t, "", cfg.Metrics.Addr)
	assert.Equal(t, "tradequery", cfg.Metrics.Namespace)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"stdout"}, cfg.Log.Outputs)
	assert.True(t, cfg.Reload.Enabled)
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeTempConfig(t, "http: [not, a, map"))
	assert.ErrorContains(t, err, "parse yaml")
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
env: dev
http:
  addr: ":8080"
`)
	t.Setenv("TQ_ENV", "staging")
	t.Setenv("TQ_HTTP_ADDR", ":7000")
	t.Setenv("TQ_METRICS_ADDR", ":7001")
	t.Setenv("TQ_LOG_LEVEL", "debug")
	t.Setenv("TQ_RELOAD_DEBOUNCE", "1s")

	cfg, err := LoadWithEnvOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, ":7000", cfg.HTTP.Addr)
	assert.Equal(t, ":7001", cfg.Metrics.Addr)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, time.Second, cfg.Reload.Debounce)
}

func TestLoadWithDotEnv(t *testing.T) {
	dir := t.TempDir()
	dotEnv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotEnv, []byte("TQ_LOG_FORMAT=console\n"), 0o644))

	orig := dotEnvFiles
	dotEnvFiles = []string{dotEnv, filepath.Join(dir, "absent.env")}
	defer func() { dotEnvFiles = orig }()
	// godotenv sets process env; register cleanup through t.Setenv first.
	t.Setenv("TQ_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("TQ_LOG_FORMAT"))

	cfg, err := LoadWithEnvOverrides("")
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestValidate(t *testing.T) {
	err := Validate(AppConfig{})
	require.Error(t, err)

	testCases := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"missing env", func(c *AppConfig) { c.Env = "" }},
		{"missing addr", func(c *AppConfig) { c.HTTP.Addr = "" }},
		{"negative timeout", func(c *AppConfig) { c.HTTP.ShutdownTimeout = -time.Second }},
		{"addr collision", func(c *AppConfig) { c.Metrics.Addr = c.HTTP.Addr }},
		{"bad level", func(c *AppConfig) { c.Log.Level = "loud" }},
		{"bad format", func(c *AppConfig) { c.Log.Format = "xml" }},
		{"file output without path", func(c *AppConfig) { c.Log.Outputs = []string{"file"} }},
		{"unknown output", func(c *AppConfig) { c.Log.Outputs = []string{"syslog"} }},
		{"negative debounce", func(c *AppConfig) { c.Reload.Debounce = -1 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, Validate(cfg))
		})
	}

	assert.NoError(t, Validate(Default()))
}
