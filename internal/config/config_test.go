package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 1, cfg.Version)
	require.NotEmpty(t, cfg.DataDir, "default data dir must be set")
	require.Equal(t, "tallyho.log", cfg.LogFile)
	require.False(t, cfg.UI.ShowIDs)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.DataDir = "/tmp/tallyho-test-board"
	cfg.UI.ShowIDs = true

	require.NoError(t, cs.SaveToPath(cfg, path))

	loaded, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Version, loaded.Version)
	require.Equal(t, cfg.DataDir, loaded.DataDir)
	require.Equal(t, cfg.LogFile, loaded.LogFile)
	require.True(t, loaded.UI.ShowIDs)
}

func TestSaveWritesTOML(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, cs.SaveToPath(DefaultConfig(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	require.Contains(t, content, "version = 1", "config should be TOML with a version key")
	require.Contains(t, content, "data_dir =")
	require.Contains(t, content, "[ui]")
	require.Contains(t, content, "show_ids = false")
}

func TestLoadFromPathFillsDefaults(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.DataDir, "missing data_dir should fall back to the default")
	require.Equal(t, "tallyho.log", cfg.LogFile)
}

func TestLoadFromPathRejectsBadTOML(t *testing.T) {
	cs := NewConfigService()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	_, err := cs.LoadFromPath(path)
	require.Error(t, err)
}

func TestResolveDataDirExpandsHome(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	cfg := &Config{DataDir: "~/boards"}
	dir, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "boards"), dir)
}

func TestResolveDataDirPlainPath(t *testing.T) {
	cfg := &Config{DataDir: "/var/lib/tallyho"}
	dir, err := cfg.ResolveDataDir()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/tallyho", dir)
}
