package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFileFindsAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	resolved, err := ResolveFile(path)
	assert.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolveFileErrorsWhenAbsolutePathMissing(t *testing.T) {
	_, err := ResolveFile(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestResolveFileFindsRelativeToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() { assert.NoError(t, os.Chdir(wd)) }()

	assert.NoError(t, os.WriteFile(filepath.Join(dir, "relative.toml"), []byte("x"), 0o644))

	resolved, err := ResolveFile("relative.toml")
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "relative.toml"), resolved)
}

func TestResolveCreateFolderCreatesMissingFolder(t *testing.T) {
	wd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(t.TempDir()))
	defer func() { assert.NoError(t, os.Chdir(wd)) }()

	resolved, err := ResolveCreateFolder("newlogs")
	assert.NoError(t, err)
	info, statErr := os.Stat(resolved)
	assert.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestResolveCreateFolderReturnsExistingAbsoluteFolder(t *testing.T) {
	dir := t.TempDir()
	resolved, err := ResolveCreateFolder(dir)
	assert.NoError(t, err)
	assert.Equal(t, filepath.Clean(dir), resolved)
}
