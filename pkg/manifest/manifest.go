// Package manifest defines the fixed set of configuration files the
// write stage materializes. Contents live as embedded assets; the
// relative paths and their order are the contract.
package manifest

import (
	"embed"
	"strings"
)

//go:embed assets
var assets embed.FS

// File is one manifest entry: a path relative to the config root and
// the exact content written there.
type File struct {
	RelPath string
	Content string
}

// relPaths defines write order. Each write is independent; the order
// only makes progress output deterministic.
var relPaths = []string{
	"init.lua",
	"lua/config/options.lua",
	"lua/config/keymaps.lua",
	"lua/config/autocmds.lua",
	"lua/config/lazy.lua",
}

// LazySetupMarker is the substring the tools command locates before
// patching lazy.lua.
const LazySetupMarker = "require('lazy').setup({"

// PluginSentinel marks the insertion point for additional plugin specs
// inside lazy.lua.
const PluginSentinel = "-- nvup:plugins"

// Files returns the manifest entries in write order. Content is
// trimmed of surrounding whitespace, matching what lands on disk.
func Files() ([]File, error) {
	files := make([]File, 0, len(relPaths))
	for _, rel := range relPaths {
		data, err := assets.ReadFile("assets/" + rel)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			RelPath: rel,
			Content: strings.TrimSpace(string(data)),
		})
	}
	return files, nil
}
