package setup

import (
	"io/fs"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/fsutil"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/types"
)

// Cleanup removes the existing config, data and state roots.
//
// Only the config root is permission-checked up front; the other two
// surface their errors per item. Per-item failures are reported and
// the loop continues, so a partially removed tree is possible and
// accepted. A declined confirmation succeeds without removing
// anything. This stage never writes new content.
func Cleanup(opts Options) types.Result {
	logger := logging.GetLogger("setup.cleanup")
	p := opts.Printer

	if !fsutil.CheckWritable(opts.FS, opts.Paths.ConfigDir) {
		p.Errorf("No write permission for config directory: %s", opts.Paths.ConfigDir)
		return types.Failf(
			errors.Newf(errors.ErrPermission, "config root %s is not writable", opts.Paths.ConfigDir),
			"config root not writable")
	}

	ok, err := opts.Confirmer.Confirm("Proceed with removing existing configuration files/dirs?")
	if err != nil {
		return types.Failf(err, "confirmation failed")
	}
	if !ok {
		p.Warningf("Cleanup aborted by user. Proceeding with setup...")
		return types.Warnf("cleanup declined")
	}

	p.Infof("Cleaning up existing configuration...")
	removed := 0
	for _, item := range opts.Paths.SourceRoots() {
		info, err := opts.FS.Lstat(item)
		if err != nil {
			continue
		}

		if opts.DryRun {
			p.Itemf("Would remove: %s", item)
			removed++
			continue
		}

		if info.IsDir() && info.Mode()&fs.ModeSymlink == 0 {
			// Partial removal is acceptable; RemoveAll already skips on
			// the entries it cannot delete.
			if err := opts.FS.RemoveAll(item); err != nil {
				p.Errorf("Failed to remove %s: %v", item, err)
				logger.Error().Err(err).Str("path", item).Msg("Directory removal failed")
				continue
			}
			p.Itemf("Removed directory: %s", item)
		} else {
			if err := opts.FS.Remove(item); err != nil {
				p.Errorf("Failed to remove %s: %v", item, err)
				logger.Error().Err(err).Str("path", item).Msg("File removal failed")
				continue
			}
			p.Itemf("Removed file: %s", item)
		}
		removed++
	}

	if removed > 0 {
		p.Successf("Cleanup finished.")
		return types.OK("removed %d item(s)", removed)
	}
	p.Infof("No existing configuration items found to clean up.")
	return types.OK("nothing to clean up")
}
