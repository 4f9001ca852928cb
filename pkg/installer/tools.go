package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nvup/pkg/config"
	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/style"
)

// Tools runs the point installers: the tools that need a toolchain
// manager, a direct archive download, or a language-ecosystem package
// manager rather than the distribution's packages.
//
// Every installer is idempotent: already-resolvable commands are
// skipped. Installers that verify their result (go, lazygit,
// golangci-lint) return an error the orchestrator treats as fatal;
// the rest surface failures as warnings.
type Tools struct {
	Runner   Runner
	Cache    *ToolCache
	Printer  *style.Printer
	Download Downloader
	Versions config.Tools

	// HomeDir is the invoking user's home, for ~/.cargo/bin and ~/go/bin
	HomeDir string

	// WorkDir is where downloads land before install
	WorkDir string
}

const (
	rustupURL         = "https://sh.rustup.rs"
	goDownloadURL     = "https://go.dev/dl/%s"
	lazygitReleaseURL = "https://github.com/jesseduffield/lazygit/releases/download/v%s/%s"
	golangciInstall   = "curl -sSfL https://raw.githubusercontent.com/golangci/golangci-lint/master/install.sh | sh -s -- -b $(go env GOPATH)/bin v%s"
)

// InstallRustup installs the Rust toolchain manager plus rustfmt.
func (t *Tools) InstallRustup() error {
	if t.Cache.Has("rustup") {
		t.Printer.Infof("rustup is already installed.")
		return nil
	}

	t.Printer.Infof("Installing rustup...")
	script := filepath.Join(t.WorkDir, "rustup-init.sh")
	if err := t.Download(rustupURL, script); err != nil {
		return err
	}
	defer func() { _ = os.Remove(script) }()

	if out, err := t.Runner.RunShell("sh " + script + " -y"); err != nil {
		t.Printer.Errorf("Failed to install rustup\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "rustup installation failed")
	}
	t.Cache.AddDir(filepath.Join(t.HomeDir, ".cargo", "bin"))

	if out, err := t.Runner.Run(t.mustLook("rustup"), "component", "add", "rustfmt"); err != nil {
		t.Printer.Errorf("Failed to install rustfmt\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "rustfmt installation failed")
	}
	return nil
}

// InstallGo installs the Go toolchain from the official tarball.
// A missing go binary after install is a verified failure.
func (t *Tools) InstallGo() error {
	if t.Cache.Has("go") {
		t.Printer.Infof("Go is already installed.")
		return nil
	}

	t.Printer.Infof("Installing Go...")
	tarName := fmt.Sprintf("go%s.linux-amd64.tar.gz", t.Versions.GoVersion)
	tarPath := filepath.Join(t.WorkDir, tarName)
	if err := t.Download(fmt.Sprintf(goDownloadURL, tarName), tarPath); err != nil {
		return err
	}
	defer func() { _ = os.Remove(tarPath) }()

	if out, err := t.Runner.Run("sudo", "tar", "-C", "/usr/local", "-xzf", tarPath); err != nil {
		t.Printer.Errorf("Failed to extract Go tarball\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "go extraction failed")
	}
	t.Cache.AddDir("/usr/local/go/bin")

	if !t.Cache.Has("go") {
		t.Printer.Errorf("Go installation failed.")
		return errors.New(errors.ErrToolMissing, "go is not resolvable after installation")
	}
	return nil
}

// InstallLazygit installs the lazygit release binary.
// A missing lazygit binary after install is a verified failure.
func (t *Tools) InstallLazygit() error {
	if t.Cache.Has("lazygit") {
		t.Printer.Infof("lazygit is already installed.")
		return nil
	}

	t.Printer.Infof("Installing lazygit...")
	tarName := fmt.Sprintf("lazygit_%s_Linux_x86_64.tar.gz", t.Versions.LazygitVersion)
	tarPath := filepath.Join(t.WorkDir, tarName)
	if err := t.Download(fmt.Sprintf(lazygitReleaseURL, t.Versions.LazygitVersion, tarName), tarPath); err != nil {
		return err
	}
	defer func() { _ = os.Remove(tarPath) }()

	if out, err := t.Runner.Run("tar", "-C", t.WorkDir, "-xzf", tarPath); err != nil {
		t.Printer.Errorf("Failed to extract lazygit tarball\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "lazygit extraction failed")
	}
	if out, err := t.Runner.Run("sudo", "mv", filepath.Join(t.WorkDir, "lazygit"), "/usr/local/bin/"); err != nil {
		t.Printer.Errorf("Failed to install lazygit binary\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "lazygit install failed")
	}
	t.Cache.AddDir("/usr/local/bin")

	if !t.Cache.Has("lazygit") {
		t.Printer.Errorf("lazygit installation failed.")
		return errors.New(errors.ErrToolMissing, "lazygit is not resolvable after installation")
	}
	return nil
}

// InstallGolangciLint installs golangci-lint into GOPATH/bin.
// Requires go; a missing binary after install is a verified failure.
func (t *Tools) InstallGolangciLint() error {
	if t.Cache.Has("golangci-lint") {
		t.Printer.Infof("golangci-lint is already installed.")
		return nil
	}
	if !t.Cache.Has("go") {
		t.Printer.Errorf("Go must be installed before installing golangci-lint.")
		return errors.New(errors.ErrToolMissing, "go is required for golangci-lint")
	}

	t.Printer.Infof("Installing golangci-lint...")
	if out, err := t.Runner.RunShell(fmt.Sprintf(golangciInstall, t.Versions.GolangciLintVersion)); err != nil {
		t.Printer.Errorf("Failed to install golangci-lint\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "golangci-lint installation failed")
	}
	t.Cache.AddDir(filepath.Join(t.HomeDir, "go", "bin"))

	if !t.Cache.Has("golangci-lint") {
		t.Printer.Errorf("golangci-lint installation failed.")
		return errors.New(errors.ErrToolMissing, "golangci-lint is not resolvable after installation")
	}
	return nil
}

// InstallStylua installs stylua through cargo.
func (t *Tools) InstallStylua() error {
	if t.Cache.Has("stylua") {
		t.Printer.Infof("stylua is already installed.")
		return nil
	}
	cargo, ok := t.Cache.Look("cargo")
	if !ok {
		t.Printer.Errorf("cargo must be installed before installing stylua (run rustup installation first).")
		return errors.New(errors.ErrToolMissing, "cargo is required for stylua")
	}

	t.Printer.Infof("Installing stylua with cargo...")
	if out, err := t.Runner.Run(cargo, "install", "stylua"); err != nil {
		t.Printer.Errorf("Failed to install stylua with cargo\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "stylua installation failed")
	}
	return nil
}

// InstallPipPackages installs Python packages into the active environment.
func (t *Tools) InstallPipPackages(packages []string) error {
	pip, ok := t.Cache.Look("pip3")
	if !ok {
		t.Printer.Errorf("pip3 must be installed before installing Python packages.")
		return errors.New(errors.ErrToolMissing, "pip3 is required")
	}

	t.Printer.Infof("Installing Python packages with pip: %s", strings.Join(packages, ", "))
	args := append([]string{"install"}, packages...)
	if out, err := t.Runner.Run(pip, args...); err != nil {
		t.Printer.Errorf("Failed to install Python packages with pip\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "pip installation failed")
	}
	return nil
}

// InstallNpmPackages installs Node.js packages globally.
func (t *Tools) InstallNpmPackages(packages []string) error {
	npm, ok := t.Cache.Look("npm")
	if !ok {
		t.Printer.Errorf("npm must be installed before installing Node.js packages.")
		return errors.New(errors.ErrToolMissing, "npm is required")
	}

	t.Printer.Infof("Installing Node.js packages with npm: %s", strings.Join(packages, ", "))
	args := append([]string{"install", "-g"}, packages...)
	if out, err := t.Runner.Run(npm, args...); err != nil {
		t.Printer.Errorf("Failed to install Node.js packages with npm\nOutput: %s", out)
		return errors.Wrap(err, errors.ErrInstallFailed, "npm installation failed")
	}
	return nil
}

func (t *Tools) mustLook(name string) string {
	if path, ok := t.Cache.Look(name); ok {
		return path
	}
	// Fall back to the bare name; the runner reports the real failure.
	logger := logging.GetLogger("installer.tools")
	logger.Debug().Str("tool", name).Msg("Tool not resolvable, using bare name")
	return name
}
