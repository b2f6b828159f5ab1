package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_AppliesConsoleDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "8080"
  mode: debug
jwt:
  secret: dev
  expire_hours: 12
platform:
  base_url: http://platform.local
storage:
  type: minio
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 3*time.Second, cfg.Console.NoticeTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.Console.ReorderDebounce)
	assert.Equal(t, 30*time.Second, cfg.Platform.Timeout)
	assert.Equal(t, "/login/", cfg.Platform.CSRFPath)
	assert.EqualValues(t, DefaultLogoMaxBytes, cfg.Console.LogoMaxBytes)
	assert.Equal(t, 600, cfg.RateLimit.MaxRequests)
}

func TestLoadConfig_ReadsConsoleSection(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: debug
platform:
  base_url: http://platform.local
  timeout_seconds: 5
console:
  time_zone: Europe/London
  notice_ttl_ms: 1500
  reorder_debounce_ms: 250
  hidden_modules: [benchmarkModule, trainingModule]
storage:
  type: minio
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Platform.Timeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Console.NoticeTTL)
	assert.Equal(t, 250*time.Millisecond, cfg.Console.ReorderDebounce)
	assert.Equal(t, []string{"benchmarkModule", "trainingModule"}, cfg.Console.HiddenModules)
	assert.Equal(t, "Europe/London", cfg.Console.Location().String())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: debug
platform:
  base_url: http://from-file
storage:
  type: minio
`)
	t.Setenv("PLATFORM_BASE_URL", "http://from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.Platform.BaseURL)
}

func TestLoadConfig_RejectsMissingPlatform(t *testing.T) {
	dir := writeConfig(t, "server:\n  mode: debug\nstorage:\n  type: minio\n")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform.base_url")
}

func TestLoadConfig_ShortSecretInRelease(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
jwt:
  secret: short
platform:
  base_url: http://platform.local
storage:
  type: minio
`)

	_, err := LoadConfig(dir)
	require.Error(t, err)
}

func TestLocation_FallsBackToLocal(t *testing.T) {
	assert.Equal(t, time.Local, ConsoleConfig{}.Location())
	assert.Equal(t, time.Local, ConsoleConfig{TimeZone: "Nowhere/Invalid"}.Location())
}
