// Package config loads nvup's own configuration file. The file is
// optional; it overrides the backup location, tool version pins, and
// adds packages to the bulk install list.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
)

// ConfigFileName is the file looked up under the nvup config dir.
const ConfigFileName = "config.toml"

// Tools pins the versions of the point-installed tools.
type Tools struct {
	GoVersion           string `toml:"go_version"`
	LazygitVersion      string `toml:"lazygit_version"`
	GolangciLintVersion string `toml:"golangci_lint_version"`
}

// Packages adds distribution packages to the bulk install pass.
type Packages struct {
	ExtraDebian []string `toml:"extra_debian"`
	ExtraRedhat []string `toml:"extra_redhat"`
}

// Config is nvup's own configuration, distinct from the Neovim
// configuration it deploys.
type Config struct {
	BackupDir string   `toml:"backup_dir"`
	Tools     Tools    `toml:"tools"`
	Packages  Packages `toml:"packages"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tools: Tools{
			GoVersion:           "1.22.2",
			LazygitVersion:      "0.40.2",
			GolangciLintVersion: "1.55.2",
		},
	}
}

// Path returns the configuration file location (~/.config/nvup/config.toml).
func Path() string {
	return filepath.Join(xdg.ConfigHome, "nvup", ConfigFileName)
}

// Load reads the configuration file at path, merged over defaults.
// A missing file is not an error; a malformed one is, since it is
// explicit user input.
func Load(path string) (Config, error) {
	logger := logging.GetLogger("config")
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No config file, using defaults")
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}

	logger.Debug().Str("path", path).Msg("Loaded config file")
	return cfg, nil
}
