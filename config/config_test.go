package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "APC MINI", cfg.Device.PortPrefix)
	assert.True(t, cfg.Device.AutoConnect)
	assert.True(t, cfg.Monitor.MirrorLEDs)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := DefaultConfig()
	cfg.Device.PortPrefix = "APC MINI MK2"
	cfg.Monitor.MirrorLEDs = false
	require.NoError(t, Save(cfg))

	_, err := os.Stat(filepath.Join(home, ".config", "apc-mini", "config.json"))
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "APC MINI MK2", loaded.Device.PortPrefix)
	assert.False(t, loaded.Monitor.MirrorLEDs)
}

func TestLoadRejectsBadJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "apc-mini")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{nope"), 0644))

	_, err := Load()
	assert.Error(t, err)
}
