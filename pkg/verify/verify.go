package verify

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ChecksumMismatchError carries both digests so the report can show what was
// expected against what the download actually hashed to.
type ChecksumMismatchError struct {
	Expected string
	Computed string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %s, got %s", e.Expected, e.Computed)
}

// ComputeChecksum computes the SHA-256 digest of a file as lowercase hex.
func ComputeChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	h := sha256.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", errors.Wrap(err, "failed to compute checksum")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Verify checks a file against an expected SHA-256 digest, comparing
// case-insensitively. An empty expected value is a no-op: verification is
// strictly opt-in.
func Verify(filePath, expected string) error {
	if expected == "" {
		return nil
	}

	computed, err := ComputeChecksum(filePath)
	if err != nil {
		return err
	}

	if !strings.EqualFold(computed, expected) {
		return &ChecksumMismatchError{Expected: expected, Computed: computed}
	}
	return nil
}
