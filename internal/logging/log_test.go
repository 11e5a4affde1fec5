package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/internal/config"
)

func TestGetLogReturnsUsableLogger(t *testing.T) {
	log := GetLog()
	assert.NotNil(t, log)
	assert.NotPanics(t, func() { log.Info("test message from GetLog") })
}

func TestGetSearchLogReturnsUsableLogger(t *testing.T) {
	log := GetSearchLog()
	assert.NotNil(t, log)
	assert.NotPanics(t, func() { log.Debug("test message from GetSearchLog") })
}

func TestGetTestLogReturnsUsableLogger(t *testing.T) {
	log := GetTestLog()
	assert.NotNil(t, log)
	assert.NotPanics(t, func() { log.Debug("test message from GetTestLog") })
}

func TestGetUciLogWritesToLogPath(t *testing.T) {
	config.Settings.Log.LogPath = t.TempDir()

	log := GetUciLog()
	assert.NotNil(t, log)
	log.Info("id name corvid")

	entries, err := os.ReadDir(config.Settings.Log.LogPath)
	assert.NoError(t, err)
	found := false
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".log" {
			found = true
		}
	}
	assert.True(t, found, "expected a *_uci.log file under the configured log path")
}
