// Package paths provides centralized path handling for nvup.
// Every stage receives a Paths value as a parameter; nothing in the
// codebase reads path locations from package-level state.
package paths

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the Neovim configuration directory
	EnvConfigDir = "NVIM_CONFIG_DIR"

	// EnvDataDir overrides the Neovim data directory
	EnvDataDir = "NVIM_DATA_DIR"

	// EnvStateDir overrides the Neovim state directory
	EnvStateDir = "NVIM_STATE_DIR"

	// EnvBackupDir overrides the backup root
	EnvBackupDir = "NVUP_BACKUP_DIR"
)

// Default directory names
const (
	// NvimDirName is the directory name Neovim uses under each XDG root
	NvimDirName = "nvim"

	// BackupDirName is the default backup root under the home directory
	BackupDirName = "nvim_backups"

	// BackupPrefix names timestamped backup directories
	BackupPrefix = "nvim_backup"

	// BackupTimestampFormat is second-granularity, filesystem-safe
	BackupTimestampFormat = "20060102_150405"
)

// Paths holds every filesystem location the setup flow touches,
// resolved once at process start.
type Paths struct {
	// ConfigDir is the Neovim configuration root (~/.config/nvim)
	ConfigDir string

	// DataDir is the Neovim plugin data root (~/.local/share/nvim)
	DataDir string

	// StateDir is the Neovim runtime state root (~/.local/state/nvim)
	StateDir string

	// BackupRoot is where timestamped backups are created (~/nvim_backups)
	BackupRoot string
}

// New resolves all paths from the XDG base directories and environment
// overrides.
func New() Paths {
	p := Paths{
		ConfigDir:  filepath.Join(xdg.ConfigHome, NvimDirName),
		DataDir:    filepath.Join(xdg.DataHome, NvimDirName),
		StateDir:   filepath.Join(xdg.StateHome, NvimDirName),
		BackupRoot: filepath.Join(xdg.Home, BackupDirName),
	}
	if v := os.Getenv(EnvConfigDir); v != "" {
		p.ConfigDir = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		p.DataDir = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		p.StateDir = v
	}
	if v := os.Getenv(EnvBackupDir); v != "" {
		p.BackupRoot = v
	}
	return p
}

// SourceRoots returns the three roots backed up and cleaned, in the
// documented order.
func (p Paths) SourceRoots() []string {
	return []string{p.ConfigDir, p.DataDir, p.StateDir}
}

// BackupDest returns the timestamped destination directory for a backup
// taken at t.
func (p Paths) BackupDest(t time.Time) string {
	return filepath.Join(p.BackupRoot, BackupPrefix+"_"+t.Format(BackupTimestampFormat))
}

// LazyFile returns the path of the lazy.nvim bootstrap file the tools
// command patches.
func (p Paths) LazyFile() string {
	return filepath.Join(p.ConfigDir, "lua", "config", "lazy.lua")
}
