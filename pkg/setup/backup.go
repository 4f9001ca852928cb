package setup

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/fsutil"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/types"
)

// Backup copies the existing config, data and state roots into a
// timestamped directory under the backup root.
//
// The stage fails fast when the backup root is not writable (before
// any prompt), succeeds trivially when no source exists, and treats a
// declined confirmation as "proceed without backup". Only an actual
// copy error yields a failure, and callers downgrade even that to a
// warning: this stage can delay the run, never halt it.
func Backup(opts Options) types.Result {
	logger := logging.GetLogger("setup.backup")
	p := opts.Printer

	if !fsutil.CheckWritable(opts.FS, opts.Paths.BackupRoot) {
		p.Errorf("No write permission for backup directory: %s", opts.Paths.BackupRoot)
		return types.Failf(
			errors.Newf(errors.ErrPermission, "backup root %s is not writable", opts.Paths.BackupRoot),
			"backup root not writable")
	}

	dest := opts.Paths.BackupDest(opts.now())

	p.Infof("Preparing backup...")
	var items []string
	for _, root := range opts.Paths.SourceRoots() {
		if _, err := opts.FS.Stat(root); err == nil {
			items = append(items, root)
			p.Itemf("Found: %s", root)
		}
	}

	if len(items) == 0 {
		p.Warningf("No existing Neovim configuration found to back up.")
		return types.Warnf("nothing to back up")
	}

	ok, err := opts.Confirmer.Confirm(fmt.Sprintf("Backup existing config to '%s'?", dest))
	if err != nil {
		return types.Failf(err, "confirmation failed")
	}
	if !ok {
		p.Warningf("Backup aborted by user. Proceeding with setup...")
		return types.Warnf("backup declined")
	}

	if opts.DryRun {
		p.Infof("Dry run: would back up %d item(s) to %s", len(items), dest)
		return types.OK("dry run")
	}

	if err := opts.FS.MkdirAll(dest, 0755); err != nil {
		p.Errorf("Backup failed: %v", err)
		return types.Failf(errors.Wrapf(err, errors.ErrBackupFailed, "cannot create %s", dest), "backup failed")
	}
	for _, item := range items {
		target := filepath.Join(dest, filepath.Base(item))
		p.Itemf("Backing up %s to %s...", filepath.Base(item), target)
		if err := fsutil.CopyTree(opts.FS, item, target); err != nil {
			logger.Error().Err(err).Str("source", item).Msg("Backup copy failed")
			p.Errorf("Backup failed: %v", err)
			return types.Failf(errors.Wrapf(err, errors.ErrBackupFailed, "copy of %s failed", item), "backup failed")
		}
	}

	p.Successf("Backup completed successfully to %s", dest)
	logger.Info().Str("dest", dest).Int("items", len(items)).Msg("Backup completed")
	return types.OK("backed up %d item(s) to %s", len(items), dest)
}
