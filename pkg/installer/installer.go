// Package installer orchestrates one installation run: resolve, download,
// verify, extract, install, and update the user PATH, with the run workspace
// removed on every exit path.
package installer

import (
	"context"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/lndgalante/windows-subtis-cli/pkg/archive"
	"github.com/lndgalante/windows-subtis-cli/pkg/config"
	"github.com/lndgalante/windows-subtis-cli/pkg/fetch"
	"github.com/lndgalante/windows-subtis-cli/pkg/install"
	"github.com/lndgalante/windows-subtis-cli/pkg/pathenv"
	"github.com/lndgalante/windows-subtis-cli/pkg/release"
	"github.com/lndgalante/windows-subtis-cli/pkg/verify"
)

// Result reports what a successful run did.
type Result struct {
	// InstalledPath is the final location of the executable.
	InstalledPath string
	// Version is the effective installed version, empty when unknown
	// (explicit URL with no pinned version).
	Version string
	// PathUpdated is true when the install directory was appended to the
	// user PATH during this run.
	PathUpdated bool
	// PathSkipped is true when the update was suppressed by configuration.
	PathSkipped bool
}

// Installer runs the installation pipeline for one Config.
type Installer struct {
	Config    *config.Config
	Resolver  *release.Resolver
	PathStore pathenv.Store
}

// New creates an Installer with the real resolver and PATH store.
func New(cfg *config.Config) *Installer {
	return &Installer{
		Config:    cfg,
		Resolver:  release.NewResolver(),
		PathStore: pathenv.NewUserStore(),
	}
}

// Run executes the pipeline. The first failing step aborts the run; the
// temporary workspace is removed regardless of the outcome.
func (i *Installer) Run(ctx context.Context) (*Result, error) {
	cfg := i.Config

	resolution, err := i.Resolver.Resolve(ctx, cfg)
	if err != nil {
		return nil, err
	}

	workspace, err := os.MkdirTemp("", "subtis-install-")
	if err != nil {
		return nil, errors.Wrap(err, "failed to create temporary workspace")
	}
	defer os.RemoveAll(workspace)

	archivePath := filepath.Join(workspace, config.AssetName)
	log.Infof("downloading %s", resolution.URL)
	if err := fetch.Download(ctx, resolution.URL, archivePath); err != nil {
		return nil, err
	}

	if cfg.Checksum == "" {
		log.Debug("no checksum configured, skipping verification")
	} else {
		log.Info("verifying archive checksum")
		if err := verify.Verify(archivePath, cfg.Checksum); err != nil {
			return nil, err
		}
	}

	extractDir := filepath.Join(workspace, "extracted")
	log.Info("extracting archive")
	if err := archive.ExtractZip(archivePath, extractDir); err != nil {
		return nil, err
	}

	executable, err := archive.FindExecutable(extractDir, config.ExecutableName)
	if err != nil {
		return nil, err
	}

	log.Infof("installing %s to %s", config.ExecutableName, cfg.InstallDir)
	installedPath, err := install.Binary(executable, cfg.InstallDir, config.ExecutableName)
	if err != nil {
		return nil, err
	}

	result := &Result{
		InstalledPath: installedPath,
		Version:       resolution.Version,
	}

	if cfg.SkipPathUpdate {
		log.Info("skipping PATH update")
		result.PathSkipped = true
		return result, nil
	}

	updater := pathenv.NewUpdater(i.PathStore)
	updated, err := updater.Ensure(cfg.InstallDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user PATH")
	}
	if updated {
		log.Infof("added %s to user PATH", cfg.InstallDir)
	} else {
		log.Debugf("%s already on user PATH", cfg.InstallDir)
	}
	result.PathUpdated = updated

	return result, nil
}
