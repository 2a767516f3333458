package install

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
)

// Binary copies the executable at sourcePath into targetDir under
// targetName, overwriting any previous installation. The copy goes through a
// temporary file in the target directory so the replacement is atomic and a
// failed copy never clobbers an existing install.
func Binary(sourcePath, targetDir, targetName string) (string, error) {
	targetPath := filepath.Join(targetDir, targetName)

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", errors.Wrap(err, "failed to create install directory")
	}

	source, err := os.Open(sourcePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open source file")
	}
	defer source.Close()

	tmpFile, err := os.CreateTemp(targetDir, "."+targetName+"-*")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temporary file")
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmpFile, source); err != nil {
		tmpFile.Close()
		return "", errors.Wrap(err, "failed to copy binary")
	}

	if err := tmpFile.Chmod(0755); err != nil {
		tmpFile.Close()
		return "", errors.Wrap(err, "failed to set permissions")
	}

	if err := tmpFile.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close temporary file")
	}

	if err := replace(tmpPath, targetPath); err != nil {
		return "", err
	}

	success = true
	return targetPath, nil
}

// replace renames sourcePath over targetPath. Windows refuses to rename over
// an existing file, so the old install is removed first when rename fails.
func replace(sourcePath, targetPath string) error {
	if err := os.Rename(sourcePath, targetPath); err != nil {
		if runtime.GOOS == "windows" || os.IsExist(err) {
			if err := os.Remove(targetPath); err != nil && !os.IsNotExist(err) {
				return errors.Wrap(err, "failed to remove existing file")
			}
			if err := os.Rename(sourcePath, targetPath); err != nil {
				return errors.Wrap(err, "failed to install binary")
			}
		} else {
			return errors.Wrap(err, "failed to install binary")
		}
	}
	return nil
}
