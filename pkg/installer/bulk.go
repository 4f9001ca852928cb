package installer

import (
	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/style"
)

// InstallBulk installs packages one at a time with the family's
// package manager. Per-package failures are collected and returned,
// never fatal; only a failed apt index update aborts the pass.
func InstallBulk(r Runner, p *style.Printer, family Family, packages []string) ([]string, error) {
	logger := logging.GetLogger("installer.bulk")

	switch family {
	case FamilyDebian:
		p.Infof("Updating package lists with apt...")
		if out, err := r.Run("sudo", "apt", "update"); err != nil {
			p.Errorf("Failed to update package lists\nOutput: %s", out)
			return nil, errors.Wrap(err, errors.ErrInstallFailed, "apt update failed")
		}
	case FamilyRedhat:
		p.Infof("Updating package lists with dnf...")
		// dnf check-update exits non-zero when updates exist; its
		// failure is informational only.
		if _, err := r.Run("sudo", "dnf", "check-update"); err != nil {
			logger.Debug().Err(err).Msg("dnf check-update returned non-zero")
		}
	}

	manager := family.Manager()
	var failed []string
	for _, pkg := range packages {
		p.Infof("Installing package with %s: %s", manager, pkg)
		out, err := r.Run("sudo", manager, "install", "-y", pkg)
		if err != nil {
			p.Warningf("Failed to install %s: %s", pkg, out)
			logger.Warn().Err(err).Str("package", pkg).Msg("Package install failed")
			failed = append(failed, pkg)
		}
	}
	return failed, nil
}
