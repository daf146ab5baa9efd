package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SMARTFARM_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "English", cfg.UI.Language)
	require.Equal(t, "light", cfg.UI.Theme)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Metrics.Addr)
}

func TestLoadExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ui]
language = "Hindi"
start_screen = "alerts"

[metrics]
addr = ":9300"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Hindi", cfg.UI.Language)
	require.Equal(t, "alerts", cfg.UI.StartScreen)
	require.Equal(t, ":9300", cfg.Metrics.Addr)
	require.Equal(t, "light", cfg.UI.Theme)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SMARTFARM_CONFIG", "")
	t.Setenv("SMARTFARM_UI_THEME", "dark")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.UI.Theme)
}

func TestLoadKeyOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[keys]
threshold-save = ["ctrl+s", "w"]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"ctrl+s", "w"}, cfg.Keys["threshold-save"])
}
