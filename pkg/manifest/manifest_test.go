package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesOrderAndPaths(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)
	require.Len(t, files, 5)

	var paths []string
	for _, f := range files {
		paths = append(paths, f.RelPath)
	}
	assert.Equal(t, []string{
		"init.lua",
		"lua/config/options.lua",
		"lua/config/keymaps.lua",
		"lua/config/autocmds.lua",
		"lua/config/lazy.lua",
	}, paths)
}

func TestContentIsTrimmed(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)

	for _, f := range files {
		assert.Equal(t, strings.TrimSpace(f.Content), f.Content, "content of %s must be trimmed", f.RelPath)
		assert.NotEmpty(t, f.Content)
	}
}

func TestLazyFileCarriesMarkerAndSentinel(t *testing.T) {
	files, err := Files()
	require.NoError(t, err)

	var lazy string
	for _, f := range files {
		if f.RelPath == "lua/config/lazy.lua" {
			lazy = f.Content
		}
	}
	require.NotEmpty(t, lazy)
	assert.Contains(t, lazy, LazySetupMarker)
	assert.Contains(t, lazy, PluginSentinel)

	// The sentinel sits inside the setup table, after the marker
	assert.Less(t, strings.Index(lazy, LazySetupMarker), strings.Index(lazy, PluginSentinel))
}
