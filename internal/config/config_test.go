package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("DEISRC_STORE", filepath.Join(tmp, "store"))
	t.Setenv("DEISRC", filepath.Join(tmp, "client.json"))
	t.Setenv("DEISRC_DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "store"), cfg.StoreDir)
	assert.Equal(t, filepath.Join(tmp, "client.json"), cfg.LinkPath)
	assert.True(t, cfg.Debug)
}

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEISRC_STORE", "")
	t.Setenv("DEISRC", "")
	t.Setenv("DEISRC_DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".deisrcs"), cfg.StoreDir)
	assert.Equal(t, filepath.Join(home, ".deis", "client.json"), cfg.LinkPath)
	assert.False(t, cfg.Debug)
}

func TestLoad_RelativePathsMadeAbsolute(t *testing.T) {
	t.Setenv("DEISRC_STORE", "relative-store")
	t.Setenv("DEISRC", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.StoreDir))
	assert.Equal(t, "relative-store", filepath.Base(cfg.StoreDir))
}

func TestProfilePath(t *testing.T) {
	cfg := &Config{StoreDir: "/tmp/store"}
	assert.Equal(t, filepath.Join("/tmp/store", "work"), cfg.ProfilePath("work"))
}
