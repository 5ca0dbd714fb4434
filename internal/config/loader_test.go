package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(paths []string, env map[string]string) *Loader {
	return &Loader{
		configPaths: paths,
		getenv:      func(k string) string { return env[k] },
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := newTestLoader(nil, nil).LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 50*time.Millisecond, cfg.Typing.Interval)
	assert.Equal(t, 300*time.Millisecond, cfg.Typing.GiftDelay)
}

func TestLoadConfig_FilePriority(t *testing.T) {
	dir := t.TempDir()
	project := writeFile(t, dir, "project.yaml", "typing:\n  interval: 20ms\n")
	user := writeFile(t, dir, "user.yaml", "typing:\n  interval: 80ms\n  gift_delay: 1s\nimages:\n  offline: true\n")

	cfg, err := newTestLoader([]string{project, user}, nil).LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, cfg.Typing.Interval, "project file wins")
	assert.Equal(t, time.Second, cfg.Typing.GiftDelay, "user file fills the rest")
	assert.True(t, cfg.Images.Offline)
	assert.Equal(t, 10*time.Second, cfg.Images.Timeout, "defaults survive")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", "content: card.yaml\nlogging:\n  level: debug\n")
	env := map[string]string{
		"GREETCARD_CONTENT":         "other.yaml",
		"GREETCARD_TYPING_INTERVAL": "5ms",
		"GREETCARD_WATCH":           "true",
	}
	cfg, err := newTestLoader(nil, env).LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "other.yaml", cfg.Content)
	assert.Equal(t, 5*time.Millisecond, cfg.Typing.Interval)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfig_Telemetry(t *testing.T) {
	cfg, err := newTestLoader(nil, nil).LoadConfig("")
	require.NoError(t, err)
	assert.True(t, cfg.Telemetry.Enabled, "enabled by default")

	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", "telemetry:\n  enabled: false\n")
	cfg, err = newTestLoader(nil, nil).LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Telemetry.Enabled)

	cfg, err = newTestLoader(nil, map[string]string{"GREETCARD_TELEMETRY": "true"}).LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Telemetry.Enabled, "env wins over file")

	_, err = newTestLoader(nil, map[string]string{"GREETCARD_TELEMETRY": "sometimes"}).LoadConfig("")
	assert.ErrorContains(t, err, "GREETCARD_TELEMETRY")
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := newTestLoader(nil, map[string]string{"GREETCARD_OFFLINE": "maybe"}).LoadConfig("")
	assert.ErrorContains(t, err, "GREETCARD_OFFLINE")

	_, err = newTestLoader(nil, nil).LoadConfig(writeFile(t, dir, "c.txt", "watch: true\n"))
	assert.ErrorContains(t, err, "extension")

	_, err = newTestLoader(nil, nil).LoadConfig(writeFile(t, dir, "bad.yaml", "typing:\n  interval: 0s\n"))
	assert.ErrorContains(t, err, "typing.interval")

	_, err = newTestLoader(nil, nil).LoadConfig(writeFile(t, dir, "lvl.yaml", "logging:\n  level: loud\n"))
	assert.ErrorContains(t, err, "logging.level")

	_, err = newTestLoader(nil, nil).LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
