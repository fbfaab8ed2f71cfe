package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adrgrip/internal/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := NewConfigServiceAt(filepath.Join(t.TempDir(), "config.toml"))

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, domain.ModeBasic, cfg.Mode())
	assert.NotEmpty(t, cfg.StatePath)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "adrgrip", "config.toml")
	cs := NewConfigServiceAt(path)

	in := &Config{
		Version:     1,
		StatePath:   "/tmp/state.json",
		LogFile:     "editor.log",
		DefaultMode: "professional",
	}
	require.NoError(t, cs.Save(in))

	out, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, in.StatePath, out.StatePath)
	assert.Equal(t, in.LogFile, out.LogFile)
	assert.Equal(t, domain.ModeProfessional, out.Mode())
}

func TestLoadFillsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.StatePath)
	assert.Equal(t, domain.ModeBasic, cfg.Mode())
}

func TestLoadBadTomlFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [not toml"), 0644))

	_, err := NewConfigServiceAt(path).Load()
	assert.Error(t, err)
}

func TestUnrecognizedDefaultModeFallsBack(t *testing.T) {
	cfg := &Config{DefaultMode: "bogus"}
	assert.Equal(t, domain.ModeBasic, cfg.Mode())
}
