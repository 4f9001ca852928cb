package paths

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigDir, "/custom/config")
	t.Setenv(EnvDataDir, "/custom/data")
	t.Setenv(EnvStateDir, "/custom/state")
	t.Setenv(EnvBackupDir, "/custom/backups")

	p := New()
	assert.Equal(t, "/custom/config", p.ConfigDir)
	assert.Equal(t, "/custom/data", p.DataDir)
	assert.Equal(t, "/custom/state", p.StateDir)
	assert.Equal(t, "/custom/backups", p.BackupRoot)
}

func TestDefaultsUseNvimDirName(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvStateDir, "")
	t.Setenv(EnvBackupDir, "")

	p := New()
	assert.Equal(t, NvimDirName, filepath.Base(p.ConfigDir))
	assert.Equal(t, NvimDirName, filepath.Base(p.DataDir))
	assert.Equal(t, NvimDirName, filepath.Base(p.StateDir))
	assert.Equal(t, BackupDirName, filepath.Base(p.BackupRoot))
}

func TestSourceRootsOrder(t *testing.T) {
	p := Paths{ConfigDir: "a", DataDir: "b", StateDir: "c"}
	assert.Equal(t, []string{"a", "b", "c"}, p.SourceRoots())
}

func TestBackupDest(t *testing.T) {
	p := Paths{BackupRoot: "/backups"}
	ts := time.Date(2026, 8, 28, 13, 45, 9, 0, time.UTC)
	assert.Equal(t, filepath.Join("/backups", "nvim_backup_20260828_134509"), p.BackupDest(ts))
}

func TestLazyFile(t *testing.T) {
	p := Paths{ConfigDir: "/home/u/.config/nvim"}
	assert.Equal(t, filepath.Join("/home/u/.config/nvim", "lua", "config", "lazy.lua"), p.LazyFile())
}
