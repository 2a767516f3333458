package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingExecutable is returned when the archive's layout does not place
// the expected executable at the extraction root.
var ErrMissingExecutable = errors.New("executable not found in archive")

// ExtractZip extracts a zip archive into destDir, replacing whatever is
// already there.
func ExtractZip(archivePath, destDir string) error {
	if err := os.RemoveAll(destDir); err != nil {
		return errors.Wrap(err, "failed to clear extraction directory")
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create extraction directory")
	}

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return errors.Wrap(err, "failed to open zip archive")
	}
	defer reader.Close()

	for _, file := range reader.File {
		if err := extractZipEntry(file, destDir); err != nil {
			return err
		}
	}
	return nil
}

func extractZipEntry(file *zip.File, destDir string) error {
	target := filepath.Join(destDir, file.Name)

	// Ensure the target path is within destDir
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("invalid path in archive: %s", file.Name)
	}

	if file.FileInfo().IsDir() {
		if err := os.MkdirAll(target, file.Mode()); err != nil {
			return errors.Wrap(err, "failed to create directory")
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrap(err, "failed to create parent directory")
	}

	fileReader, err := file.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open file in archive")
	}
	defer fileReader.Close()

	targetFile, err := os.OpenFile(target, os.O_CREATE|os.O_RDWR|os.O_TRUNC, file.Mode())
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer targetFile.Close()

	if _, err := io.Copy(targetFile, fileReader); err != nil {
		return errors.Wrap(err, "failed to extract file")
	}
	return nil
}

// FindExecutable locates the named executable at the extraction root.
func FindExecutable(destDir, name string) (string, error) {
	path := filepath.Join(destDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", errors.Wrapf(ErrMissingExecutable, "expected %s in extracted archive", name)
	}
	return path, nil
}
