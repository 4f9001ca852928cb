package installer

import (
	"os"
	"runtime"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
)

// Family is the detected package-manager family.
type Family string

const (
	// FamilyRedhat covers dnf systems (Fedora, CentOS, RHEL)
	FamilyRedhat Family = "redhat"
	// FamilyDebian covers apt systems (Debian, Ubuntu)
	FamilyDebian Family = "debian"
)

// Manager returns the package manager binary for the family.
func (f Family) Manager() string {
	if f == FamilyRedhat {
		return "dnf"
	}
	return "apt"
}

// release files probed for detection
const (
	redhatReleaseFile = "/etc/redhat-release"
	debianVersionFile = "/etc/debian_version"
)

// DetectDistro determines the distribution family. Detection failure
// is fatal to the tools command: there is no portable fallback.
func DetectDistro() (Family, error) {
	return detectDistro(runtime.GOOS, func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	})
}

func detectDistro(goos string, exists func(string) bool) (Family, error) {
	logger := logging.GetLogger("installer.distro")

	if goos != "linux" {
		return "", errors.Newf(errors.ErrDistroUnsupported, "only Linux systems are supported, got %s", goos)
	}
	if exists(redhatReleaseFile) {
		logger.Debug().Str("family", string(FamilyRedhat)).Msg("Distribution detected")
		return FamilyRedhat, nil
	}
	if exists(debianVersionFile) {
		logger.Debug().Str("family", string(FamilyDebian)).Msg("Distribution detected")
		return FamilyDebian, nil
	}
	return "", errors.New(errors.ErrDistroUnsupported,
		"unsupported Linux distribution; only Red Hat-based (Fedora, CentOS) and Debian-based (Ubuntu, Debian) systems are supported")
}
