package setup

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/nvup/pkg/filesystem"
	"github.com/arthur-debert/nvup/pkg/manifest"
	"github.com/arthur-debert/nvup/pkg/paths"
	"github.com/arthur-debert/nvup/pkg/style"
	"github.com/arthur-debert/nvup/pkg/testutil"
	"github.com/arthur-debert/nvup/pkg/types"
	"github.com/arthur-debert/nvup/pkg/ui/prompt"
)

// testEnv wires a stage Options over temp directories with scripted
// confirmations and captured output.
type testEnv struct {
	opts    Options
	paths   paths.Paths
	conf    *prompt.Scripted
	out     bytes.Buffer
	errOut  bytes.Buffer
	fixedTS time.Time
}

func newTestEnv(t *testing.T, answers ...bool) *testEnv {
	t.Helper()
	base := t.TempDir()
	env := &testEnv{
		conf: &prompt.Scripted{Answers: answers},
		paths: paths.Paths{
			ConfigDir:  filepath.Join(base, "config", "nvim"),
			DataDir:    filepath.Join(base, "share", "nvim"),
			StateDir:   filepath.Join(base, "state", "nvim"),
			BackupRoot: filepath.Join(base, "nvim_backups"),
		},
		fixedTS: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC),
	}
	env.opts = Options{
		FS:        filesystem.NewOS(),
		Paths:     env.paths,
		Confirmer: env.conf,
		Printer:   style.NewPrinterTo(&env.out, &env.errOut),
		Now:       func() time.Time { return env.fixedTS },
	}
	return env
}

func (e *testEnv) backupDest() string {
	return e.paths.BackupDest(e.fixedTS)
}

// --- Backup ---

func TestBackupNothingToBackUp(t *testing.T) {
	env := newTestEnv(t)

	res := Backup(env.opts)

	assert.Equal(t, types.StatusWarning, res.Status)
	assert.False(t, res.Failed())
	assert.Contains(t, env.errOut.String(), "No existing Neovim configuration found to back up.")
	// No prompt shown, no backup dir created
	assert.Empty(t, env.conf.Prompts)
	_, err := os.Stat(env.backupDest())
	assert.True(t, os.IsNotExist(err))
}

func TestBackupCopiesExistingRoots(t *testing.T) {
	env := newTestEnv(t, true)
	testutil.CreateFile(t, env.paths.ConfigDir, "init.lua", "-- old config")
	testutil.CreateFile(t, env.paths.StateDir, "shada/main.shada", "state")

	res := Backup(env.opts)

	require.False(t, res.Failed(), "backup should succeed: %s", res.Message)
	assert.Equal(t, types.StatusOK, res.Status)

	dest := env.backupDest()
	assert.Equal(t, "-- old config", testutil.ReadFile(t, filepath.Join(dest, "nvim", "init.lua")))

	// Prompt named the computed destination
	require.Len(t, env.conf.Prompts, 1)
	assert.Contains(t, env.conf.Prompts[0], dest)

	// Sources are untouched
	assert.True(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, "init.lua")))
}

func TestBackupSymlinkedRootCopiesContents(t *testing.T) {
	// A config root that is itself a symlink (~/.config/nvim pointing
	// into a dotfiles repo) must still yield a real backup tree, not a
	// copied link.
	env := newTestEnv(t, true)
	real := testutil.CreateDir(t, t.TempDir(), "dotfiles-nvim")
	testutil.CreateFile(t, real, "init.lua", "-- from dotfiles")
	require.NoError(t, os.MkdirAll(filepath.Dir(env.paths.ConfigDir), 0755))
	require.NoError(t, os.Symlink(real, env.paths.ConfigDir))

	res := Backup(env.opts)

	require.False(t, res.Failed(), "backup should succeed: %s", res.Message)
	backedUp := filepath.Join(env.backupDest(), "nvim")
	info, err := os.Lstat(backedUp)
	require.NoError(t, err)
	assert.True(t, testutil.DirExists(t, backedUp))
	assert.Equal(t, os.FileMode(0), info.Mode()&os.ModeSymlink)
	assert.Equal(t, "-- from dotfiles", testutil.ReadFile(t, filepath.Join(backedUp, "init.lua")))
}

func TestBackupDeclinedIsNotAnError(t *testing.T) {
	env := newTestEnv(t, false)
	testutil.CreateFile(t, env.paths.ConfigDir, "init.lua", "-- old config")

	res := Backup(env.opts)

	assert.False(t, res.Failed())
	assert.Contains(t, env.errOut.String(), "Backup aborted by user.")
	// Nothing was created or mutated
	_, err := os.Stat(env.backupDest())
	assert.True(t, os.IsNotExist(err))
	assert.True(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, "init.lua")))
}

func TestBackupUnwritableRootFailsBeforePrompt(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("chmod semantics differ on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	env := newTestEnv(t, true)
	require.NoError(t, os.MkdirAll(env.paths.BackupRoot, 0755))
	require.NoError(t, os.Chmod(env.paths.BackupRoot, 0555))
	t.Cleanup(func() { _ = os.Chmod(env.paths.BackupRoot, 0755) })

	res := Backup(env.opts)

	assert.True(t, res.Failed())
	assert.Contains(t, env.errOut.String(), "No write permission for backup directory")
	// Failure happens before any confirmation
	assert.Empty(t, env.conf.Prompts)
}

// --- Cleanup ---

func TestCleanupRemovesAllThreeRoots(t *testing.T) {
	env := newTestEnv(t, true)
	testutil.CreateFile(t, env.paths.ConfigDir, "init.lua", "x")
	testutil.CreateFile(t, env.paths.DataDir, "lazy/lazy.nvim/README.md", "x")
	testutil.CreateFile(t, env.paths.StateDir, "log", "x")

	res := Cleanup(env.opts)

	assert.Equal(t, types.StatusOK, res.Status)
	for _, root := range env.paths.SourceRoots() {
		_, err := os.Stat(root)
		assert.True(t, os.IsNotExist(err), "%s should be gone", root)
	}
	assert.Contains(t, env.out.String(), "SUCCESS: Cleanup finished.")
}

func TestCleanupRemovesSymlinkRootWithoutFollowing(t *testing.T) {
	env := newTestEnv(t, true)
	real := testutil.CreateDir(t, t.TempDir(), "real-config")
	testutil.CreateFile(t, real, "init.lua", "precious")
	require.NoError(t, os.MkdirAll(filepath.Dir(env.paths.ConfigDir), 0755))
	require.NoError(t, os.Symlink(real, env.paths.ConfigDir))

	res := Cleanup(env.opts)

	assert.False(t, res.Failed())
	// Link removed, target untouched
	_, err := os.Lstat(env.paths.ConfigDir)
	assert.True(t, os.IsNotExist(err))
	assert.True(t, testutil.FileExists(t, filepath.Join(real, "init.lua")))
}

func TestCleanupDeclinedRemovesNothing(t *testing.T) {
	env := newTestEnv(t, false)
	testutil.CreateFile(t, env.paths.ConfigDir, "init.lua", "x")

	res := Cleanup(env.opts)

	assert.False(t, res.Failed())
	assert.True(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, "init.lua")))
}

func TestCleanupNothingToRemove(t *testing.T) {
	env := newTestEnv(t, true)

	res := Cleanup(env.opts)

	assert.Equal(t, types.StatusOK, res.Status)
	assert.Contains(t, env.out.String(), "No existing configuration items found to clean up.")
}

// --- Write ---

func TestWriteManifest(t *testing.T) {
	env := newTestEnv(t)
	files := []manifest.File{
		{RelPath: "a/b.txt", Content: "hello"},
		{RelPath: "init.lua", Content: "-- init"},
	}

	res := Write(env.opts, files)

	require.Equal(t, types.StatusOK, res.Status, res.Message)
	assert.Equal(t, "hello", testutil.ReadFile(t, filepath.Join(env.paths.ConfigDir, "a", "b.txt")))
	assert.Equal(t, "-- init", testutil.ReadFile(t, filepath.Join(env.paths.ConfigDir, "init.lua")))
	// Recursive listing is printed
	assert.Contains(t, env.out.String(), "Listing contents of")
	assert.Contains(t, env.out.String(), "File: "+filepath.Join(env.paths.ConfigDir, "a", "b.txt"))
}

func TestWriteFullManifestMatchesFileSet(t *testing.T) {
	env := newTestEnv(t)
	files, err := manifest.Files()
	require.NoError(t, err)

	res := Write(env.opts, files)

	require.Equal(t, types.StatusOK, res.Status)
	for _, f := range files {
		full := filepath.Join(env.paths.ConfigDir, filepath.FromSlash(f.RelPath))
		assert.Equal(t, f.Content, testutil.ReadFile(t, full))
	}
}

func TestWriteAbortsOnFirstFailure(t *testing.T) {
	env := newTestEnv(t)
	env.opts.FS = &failingFS{FS: filesystem.NewOS(), failOn: "b.txt"}
	files := []manifest.File{
		{RelPath: "a.txt", Content: "first"},
		{RelPath: "b.txt", Content: "second"},
		{RelPath: "c.txt", Content: "third"},
	}

	res := Write(env.opts, files)

	assert.True(t, res.Failed())
	// The write before the failure landed, the one after did not
	assert.True(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, "a.txt")))
	assert.False(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, "c.txt")))
}

// --- Run ---

func TestRunCleanupThenWriteReproducesManifest(t *testing.T) {
	// Backup declined, cleanup confirmed: whatever existed before is
	// replaced by exactly the manifest file set.
	env := newTestEnv(t, false, true)
	testutil.CreateFile(t, env.paths.ConfigDir, "stale.vim", "legacy")
	testutil.CreateFile(t, env.paths.DataDir, "old-plugin/plugin.lua", "legacy")

	require.NoError(t, Run(env.opts))

	assert.False(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, "stale.vim")))
	files, err := manifest.Files()
	require.NoError(t, err)
	for _, f := range files {
		assert.True(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, filepath.FromSlash(f.RelPath))))
	}
}

func TestRunBackupFailureIsNonFatal(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("chmod semantics differ on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	// Backup root unwritable (stage fails), cleanup confirmed
	env := newTestEnv(t, true)
	testutil.CreateFile(t, env.paths.ConfigDir, "init.lua", "old")
	require.NoError(t, os.MkdirAll(env.paths.BackupRoot, 0755))
	require.NoError(t, os.Chmod(env.paths.BackupRoot, 0555))
	t.Cleanup(func() { _ = os.Chmod(env.paths.BackupRoot, 0755) })

	require.NoError(t, Run(env.opts))

	assert.Contains(t, env.errOut.String(), "Backup failed. Proceeding with setup...")
	assert.True(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, "init.lua")))
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	env := newTestEnv(t, true, true)
	env.opts.DryRun = true
	testutil.CreateFile(t, env.paths.ConfigDir, "init.lua", "old")

	require.NoError(t, Run(env.opts))

	// Old config still present, manifest not written, no backup made
	assert.Equal(t, "old", testutil.ReadFile(t, filepath.Join(env.paths.ConfigDir, "init.lua")))
	assert.False(t, testutil.FileExists(t, filepath.Join(env.paths.ConfigDir, "lua", "config", "options.lua")))
	_, err := os.Stat(env.backupDest())
	assert.True(t, os.IsNotExist(err))
}

// failingFS wraps a real FS and fails WriteFile for paths containing a
// marker substring.
type failingFS struct {
	types.FS
	failOn string
}

func (f *failingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if f.failOn != "" && filepath.Base(name) == f.failOn {
		return fs.ErrPermission
	}
	return f.FS.WriteFile(name, data, perm)
}
