package setup

import (
	"path/filepath"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/fsutil"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/manifest"
	"github.com/arthur-debert/nvup/pkg/types"
)

// Write materializes the manifest under the config root. Each file is
// verified to exist right after it is written; the first verification
// or write error aborts the stage without touching the remaining
// entries. This stage never reads previous content. Callers treat a
// failure here as fatal.
func Write(opts Options, files []manifest.File) types.Result {
	logger := logging.GetLogger("setup.write")
	p := opts.Printer

	if !fsutil.CheckWritable(opts.FS, opts.Paths.ConfigDir) {
		p.Errorf("No write permission for config directory: %s", opts.Paths.ConfigDir)
		return types.Failf(
			errors.Newf(errors.ErrPermission, "config root %s is not writable", opts.Paths.ConfigDir),
			"config root not writable")
	}

	p.Infof("Setting up new Neovim configuration...")
	for _, file := range files {
		fullPath := filepath.Join(opts.Paths.ConfigDir, filepath.FromSlash(file.RelPath))
		p.Itemf("Creating %s...", fullPath)

		if opts.DryRun {
			continue
		}

		if err := opts.FS.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			p.Errorf("Failed to set up new configuration: %v", err)
			return types.Failf(errors.Wrapf(err, errors.ErrDirCreate, "cannot create parent of %s", fullPath), "write failed")
		}
		if err := opts.FS.WriteFile(fullPath, []byte(file.Content), 0644); err != nil {
			p.Errorf("Failed to set up new configuration: %v", err)
			return types.Failf(errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", fullPath), "write failed")
		}

		// Self-verification: a write that does not land on disk aborts
		// the whole stage immediately.
		if _, err := opts.FS.Stat(fullPath); err != nil {
			p.Errorf("Failed to create: %s", fullPath)
			logger.Error().Str("path", fullPath).Msg("Post-write verification failed")
			return types.Failf(errors.Newf(errors.ErrWriteFailed, "verification of %s failed", fullPath), "write failed")
		}
		logger.Debug().Str("path", fullPath).Int("bytes", len(file.Content)).Msg("File written")
	}

	if opts.DryRun {
		p.Infof("Dry run: would write %d file(s) under %s", len(files), opts.Paths.ConfigDir)
		return types.OK("dry run")
	}

	p.Successf("New configuration files created.")

	// Recursive listing for operator visibility
	p.Infof("Listing contents of %s:", opts.Paths.ConfigDir)
	for _, entry := range fsutil.ListTree(opts.FS, opts.Paths.ConfigDir) {
		if entry.IsDir {
			p.Itemf("Dir: %s", entry.Path)
		} else {
			p.Itemf("File: %s", entry.Path)
		}
	}

	return types.OK("wrote %d file(s)", len(files))
}
