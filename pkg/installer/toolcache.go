package installer

import (
	"os"
	"os/exec"
	"path/filepath"
)

// ToolCache resolves tool locations from directories the point
// installers registered, then from PATH. Installers record where they
// put binaries here instead of mutating the process environment, so
// lookups stay order-independent.
type ToolCache struct {
	dirs []string

	// lookPath and stat default to exec.LookPath and os.Stat; tests
	// inject their own
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
}

// NewToolCache creates an empty cache backed by exec.LookPath.
func NewToolCache() *ToolCache {
	return &ToolCache{lookPath: exec.LookPath, stat: os.Stat}
}

// AddDir registers a directory installed binaries land in.
func (c *ToolCache) AddDir(dir string) {
	for _, d := range c.dirs {
		if d == dir {
			return
		}
	}
	c.dirs = append(c.dirs, dir)
}

// Look resolves name to an executable path, searching registered
// directories before PATH.
func (c *ToolCache) Look(name string) (string, bool) {
	for _, dir := range c.dirs {
		candidate := filepath.Join(dir, name)
		if info, err := c.stat(candidate); err == nil && !info.IsDir() && info.Mode()&0111 != 0 {
			return candidate, true
		}
	}
	path, err := c.lookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}

// Has reports whether name resolves to an executable.
func (c *ToolCache) Has(name string) bool {
	_, ok := c.Look(name)
	return ok
}
