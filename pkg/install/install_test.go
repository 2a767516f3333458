package install

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "subtis.exe")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBinaryCreatesTargetDir(t *testing.T) {
	source := writeSource(t, "fake binary")
	targetDir := filepath.Join(t.TempDir(), "Programs", "Subtis")

	installed, err := Binary(source, targetDir, "subtis.exe")
	if err != nil {
		t.Fatalf("Binary failed: %v", err)
	}
	if installed != filepath.Join(targetDir, "subtis.exe") {
		t.Errorf("unexpected install path %s", installed)
	}

	content, err := os.ReadFile(installed)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "fake binary" {
		t.Errorf("installed content = %q", content)
	}
}

func TestBinaryOverwritesExistingInstall(t *testing.T) {
	targetDir := t.TempDir()
	previous := filepath.Join(targetDir, "subtis.exe")
	if err := os.WriteFile(previous, []byte("old version"), 0755); err != nil {
		t.Fatal(err)
	}

	source := writeSource(t, "new version")
	installed, err := Binary(source, targetDir, "subtis.exe")
	if err != nil {
		t.Fatalf("Binary failed: %v", err)
	}

	content, err := os.ReadFile(installed)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "new version" {
		t.Errorf("installed content = %q, want new version", content)
	}
}

func TestBinaryMissingSource(t *testing.T) {
	_, err := Binary(filepath.Join(t.TempDir(), "missing"), t.TempDir(), "subtis.exe")
	if err == nil {
		t.Error("expected error for missing source")
	}
}

func TestBinaryLeavesNoTempFileOnFailure(t *testing.T) {
	targetDir := t.TempDir()
	_, err := Binary(filepath.Join(t.TempDir(), "missing"), targetDir, "subtis.exe")
	if err == nil {
		t.Fatal("expected error")
	}

	entries, err := os.ReadDir(targetDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("target dir should be empty after failed install, has %d entries", len(entries))
	}
}
