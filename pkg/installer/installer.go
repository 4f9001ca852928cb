// Package installer implements the tools command: distribution
// detection, the bulk package-manager pass, the point installers for
// tools no distribution packages, the lazy.lua patch, and the final
// PATH verification.
//
// The stages run in fixed order with no rollback. Failure policy is
// uneven on purpose: detection failure and verified point-install
// failures are fatal, everything else degrades to warnings.
package installer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arthur-debert/nvup/pkg/config"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/paths"
	"github.com/arthur-debert/nvup/pkg/style"
	"github.com/arthur-debert/nvup/pkg/types"
)

// Options carries the injected collaborators for a tools run.
type Options struct {
	FS        types.FS
	Paths     paths.Paths
	Config    config.Config
	Confirmer types.Confirmer
	Printer   *style.Printer
	Runner    Runner
	Cache     *ToolCache
	Download  Downloader
	DryRun    bool

	// Detect overrides distribution detection in tests.
	Detect func() (Family, error)
}

// Run executes the full installation sequence. A failed result is
// fatal (unsupported distribution, verified install failures); a
// declined confirmation ends the run as a warning so callers can skip
// their completion output; an OK result may still have produced
// warnings.
func Run(opts Options) types.Result {
	defer logging.LogDuration(time.Now(), "tools installation")
	logger := logging.GetLogger("installer")
	p := opts.Printer

	detect := opts.Detect
	if detect == nil {
		detect = DetectDistro
	}
	family, err := detect()
	if err != nil {
		p.Errorf("%v", err)
		return types.Failf(err, "distribution detection failed")
	}

	extra := opts.Config.Packages.ExtraDebian
	if family == FamilyRedhat {
		extra = opts.Config.Packages.ExtraRedhat
	}
	packages := PackageSet(family, KernelRelease(), extra)

	ok, err := opts.Confirmer.Confirm(fmt.Sprintf(
		"Install Neovim and required tools using %s (%s)?",
		family.Manager(), strings.Join(packages, ", ")))
	if err != nil {
		return types.Failf(err, "confirmation failed")
	}
	if !ok {
		p.Warningf("Installation aborted by user.")
		return types.Warnf("installation declined")
	}

	if opts.DryRun {
		p.Infof("Dry run: would install %d packages with %s and run the point installers", len(packages), family.Manager())
		return types.OK("dry run")
	}

	failed, err := InstallBulk(opts.Runner, p, family, packages)
	if err != nil {
		p.Errorf("Failed to install packages: %v", err)
		return types.Failf(err, "bulk install failed")
	}
	if len(failed) > 0 {
		p.Warningf("The following packages failed to install: %s", strings.Join(failed, ", "))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	tools := &Tools{
		Runner:   opts.Runner,
		Cache:    opts.Cache,
		Printer:  p,
		Download: opts.Download,
		Versions: opts.Config.Tools,
		HomeDir:  home,
		WorkDir:  os.TempDir(),
	}

	// Verified installers are fatal on failure; the rest only warn.
	if err := tools.InstallRustup(); err != nil {
		p.Warningf("rustup installation failed: %v", err)
	}
	if err := tools.InstallGo(); err != nil {
		return types.Failf(err, "go installation failed")
	}
	if err := tools.InstallLazygit(); err != nil {
		return types.Failf(err, "lazygit installation failed")
	}
	if err := tools.InstallGolangciLint(); err != nil {
		return types.Failf(err, "golangci-lint installation failed")
	}
	if err := tools.InstallStylua(); err != nil {
		p.Warningf("stylua installation failed: %v", err)
	}
	if err := tools.InstallPipPackages([]string{"black", "isort"}); err != nil {
		p.Warningf("Python package installation failed: %v", err)
	}
	if err := tools.InstallNpmPackages([]string{"prettier"}); err != nil {
		p.Warningf("Node.js package installation failed: %v", err)
	}

	if res := PatchLazyConfig(opts.FS, opts.Paths.LazyFile(), p, opts.DryRun); res.Failed() {
		p.Warningf("You may need to manually add the Linux kernel plugins to your configuration.")
	}

	missing := VerifyTools(opts.Cache, p, VerifiedTools)
	if len(missing) > 0 {
		p.Errorf("The following tools are missing: %s", strings.Join(missing, ", "))
		p.Warningf("Some Neovim plugins or kernel development features may not work correctly without these tools.")
	} else {
		p.Successf("All tools are installed successfully!")
	}

	logger.Info().Int("packages", len(packages)).Int("failed", len(failed)).Int("missing", len(missing)).Msg("Installation finished")
	return types.OK("installed %d package(s)", len(packages))
}
