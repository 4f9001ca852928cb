// Package setup implements the configuration deployment sequence:
// backup, cleanup, write. The stages share no state and never roll
// back; they run in that fixed order because backup must see the old
// tree and write must not.
//
// Failure policy is the caller's: Run treats backup and cleanup
// failures as warnings and only a write failure as fatal.
package setup

import (
	"time"

	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/manifest"
	"github.com/arthur-debert/nvup/pkg/paths"
	"github.com/arthur-debert/nvup/pkg/style"
	"github.com/arthur-debert/nvup/pkg/types"
)

// Options carries the injected collaborators every stage needs.
type Options struct {
	FS        types.FS
	Paths     paths.Paths
	Confirmer types.Confirmer
	Printer   *style.Printer

	// Now supplies the backup timestamp; defaults to time.Now.
	Now func() time.Time

	// DryRun previews destructive operations without performing them.
	// Confirmation gates still run.
	DryRun bool
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

// Run executes backup, cleanup and write in order. Backup and cleanup
// failures downgrade to warnings; a write failure is returned and the
// command exits non-zero.
func Run(opts Options) error {
	defer logging.LogDuration(time.Now(), "configuration setup")
	p := opts.Printer

	if res := Backup(opts); res.Failed() {
		p.Warningf("Backup failed. Proceeding with setup...")
	}
	p.Rule(38)

	if res := Cleanup(opts); res.Failed() {
		p.Warningf("Cleanup skipped or failed. Proceeding with setup...")
	}
	p.Rule(38)

	files, err := manifest.Files()
	if err != nil {
		return err
	}
	if res := Write(opts, files); res.Failed() {
		return res.Err
	}
	return nil
}
