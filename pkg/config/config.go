package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

const (
	// DefaultOwner is the GitHub organization that publishes subtis releases.
	DefaultOwner = "lndgalante"
	// DefaultRepo is the GitHub repository that publishes subtis releases.
	DefaultRepo = "subtis"

	// AssetName is the release asset the installer downloads.
	AssetName = "subtis-windows-x64.zip"
	// ExecutableName is the binary expected inside the release archive.
	ExecutableName = "subtis.exe"

	// DefaultConfigPath is tried when --config is not given.
	DefaultConfigPath = ".config/subtis-install.yml"
)

// Config holds every setting for a single installer run. Fields are filled
// from the optional YAML config file first, then overridden by flags; after
// ApplyDefaults the struct is immutable for the rest of the run.
type Config struct {
	// Version pins a release tag (without the leading "v"). Empty means latest.
	Version string `yaml:"version"`
	// AssetURL skips release resolution entirely when set.
	AssetURL string `yaml:"url"`
	Owner    string `yaml:"owner"`
	Repo     string `yaml:"repo"`
	// InstallDir is where the executable ends up.
	InstallDir string `yaml:"dir"`
	// Checksum is the expected SHA-256 hex digest of the archive. Empty
	// disables verification.
	Checksum string `yaml:"checksum"`
	// SkipPathUpdate leaves the user PATH untouched.
	SkipPathUpdate bool `yaml:"skip-path"`
}

// Load reads a config file from the given path. An empty path tries the
// default location and returns a zero Config if nothing is there.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file: %s", path)
	}
	return &cfg, nil
}

// ApplyDefaults fills in every unset field.
func (c *Config) ApplyDefaults() {
	if c.Owner == "" {
		c.Owner = DefaultOwner
	}
	if c.Repo == "" {
		c.Repo = DefaultRepo
	}
	if c.InstallDir == "" {
		c.InstallDir = defaultInstallDir()
	}
}

// defaultInstallDir resolves the per-user program install location.
// %LOCALAPPDATA% is authoritative on Windows; the home-relative fallback
// keeps the path stable when it is unset.
func defaultInstallDir() string {
	if local := os.Getenv("LOCALAPPDATA"); local != "" {
		return filepath.Join(local, "Programs", "Subtis")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "AppData", "Local", "Programs", "Subtis")
	}
	return filepath.Join("Programs", "Subtis")
}

// Tag returns the release tag for a pinned version, e.g. "v2.1.0".
func (c *Config) Tag() string {
	if c.Version == "" {
		return ""
	}
	return "v" + c.Version
}
