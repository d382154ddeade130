package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.Anthropic.Model)
	assert.Equal(t, 4096, cfg.Anthropic.MaxTokens)
	assert.Equal(t, "https://api.verimail.io/v3", cfg.Verimail.BaseURL)
	assert.InDelta(t, 10.0, cfg.Verimail.RatePerSec, 0.001)
	assert.Equal(t, 10, cfg.Verimail.Burst)
	assert.Equal(t, "https://api.snov.io", cfg.Snov.BaseURL)
	assert.Equal(t, "flat", cfg.Scraper.Shape)
	assert.Equal(t, 30, cfg.Pipeline.ResultCap)
	assert.Equal(t, 10, cfg.Pipeline.PerDomainCap)
	assert.Equal(t, 10, cfg.Pipeline.ValidationChunkSize)
	assert.Empty(t, cfg.Verimail.Key)
	assert.Empty(t, cfg.Snov.Key)
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	yaml := `
anthropic:
  key: secret-anthropic
  model: claude-sonnet-4-5-20250929
verimail:
  key: secret-verimail
pipeline:
  result_cap: 50
log:
  level: debug
  format: console
server:
  port: 9090
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret-anthropic", cfg.Anthropic.Key)
	assert.Equal(t, "claude-sonnet-4-5-20250929", cfg.Anthropic.Model)
	assert.Equal(t, "secret-verimail", cfg.Verimail.Key)
	assert.Equal(t, 50, cfg.Pipeline.ResultCap)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9090, cfg.Server.Port)

	// Untouched values keep their defaults.
	assert.Equal(t, 10, cfg.Pipeline.PerDomainCap)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })

	t.Setenv("MAILSCOUT_SNOV_KEY", "env-snov-key")
	t.Setenv("MAILSCOUT_SERVER_PORT", "7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-snov-key", cfg.Snov.Key)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NotNil(t, zap.L())

	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nonsense", Format: "json"})
	require.Error(t, err)
}
