package installer

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolCacheRegisteredDirWins(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits differ on windows")
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "lazygit")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755))

	cache := NewToolCache()
	cache.AddDir(dir)

	got, ok := cache.Look("lazygit")
	assert.True(t, ok)
	assert.Equal(t, bin, got)
}

func TestToolCacheSkipsNonExecutableFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bits differ on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stylua"), []byte("data"), 0644))

	cache := NewToolCache()
	cache.AddDir(dir)
	cache.lookPath = func(string) (string, error) { return "", exec.ErrNotFound }

	assert.False(t, cache.Has("stylua"))
}

func TestToolCacheFallsBackToPath(t *testing.T) {
	cache := NewToolCache()
	cache.lookPath = func(name string) (string, error) {
		if name == "git" {
			return "/usr/bin/git", nil
		}
		return "", exec.ErrNotFound
	}

	got, ok := cache.Look("git")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/git", got)

	assert.False(t, cache.Has("no-such-tool"))
}

func TestToolCacheAddDirDeduplicates(t *testing.T) {
	cache := NewToolCache()
	cache.AddDir("/usr/local/go/bin")
	cache.AddDir("/usr/local/go/bin")
	assert.Len(t, cache.dirs, 1)
}
