package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	Setup()
	old := Settings.Search.TTSizeMb
	defer func() { Settings.Search.TTSizeMb = old }()
	Settings.Search.TTSizeMb = 999
	Setup()
	assert.Equal(t, 999, Settings.Search.TTSizeMb, "second Setup call must be a no-op")
}

func TestSetupFallsBackToDefaultsWithoutConfigFile(t *testing.T) {
	initialized = false
	ConfFile = filepath.Join(t.TempDir(), "missing.toml")
	Setup()
	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, 64, Settings.Search.TTSizeMb)
}

func TestSetupReadsTomlOverrides(t *testing.T) {
	initialized = false
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte("[Search]\nTTSizeMb = 128\n"), 0o644)
	assert.NoError(t, err)
	ConfFile = path

	Setup()
	assert.Equal(t, 128, Settings.Search.TTSizeMb)
}

func TestStringRendersAllSections(t *testing.T) {
	initialized = false
	ConfFile = filepath.Join(t.TempDir(), "missing.toml")
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "Log config:")
	assert.Contains(t, s, "Search config:")
	assert.Contains(t, s, "Eval config:")
}
