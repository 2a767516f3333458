package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefaultConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with absent default config should not fail: %v", err)
	}
	if *cfg != (Config{}) {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subtis-install.yml")
	content := `version: "2.1.0"
owner: someone
dir: C:\Tools\Subtis
checksum: ABCDEF
skip-path: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Version != "2.1.0" {
		t.Errorf("Version = %q, want 2.1.0", cfg.Version)
	}
	if cfg.Owner != "someone" {
		t.Errorf("Owner = %q, want someone", cfg.Owner)
	}
	if cfg.InstallDir != `C:\Tools\Subtis` {
		t.Errorf("InstallDir = %q", cfg.InstallDir)
	}
	if cfg.Checksum != "ABCDEF" {
		t.Errorf("Checksum = %q", cfg.Checksum)
	}
	if !cfg.SkipPathUpdate {
		t.Error("SkipPathUpdate should be true")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("version: [unterminated"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.Owner != DefaultOwner {
		t.Errorf("Owner = %q, want %q", cfg.Owner, DefaultOwner)
	}
	if cfg.Repo != DefaultRepo {
		t.Errorf("Repo = %q, want %q", cfg.Repo, DefaultRepo)
	}
	if cfg.InstallDir == "" {
		t.Error("InstallDir should get a default")
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := &Config{Owner: "me", Repo: "fork", InstallDir: "/opt/subtis"}
	cfg.ApplyDefaults()

	if cfg.Owner != "me" || cfg.Repo != "fork" || cfg.InstallDir != "/opt/subtis" {
		t.Errorf("explicit values were overridden: %+v", cfg)
	}
}

func TestDefaultInstallDirUsesLocalAppData(t *testing.T) {
	t.Setenv("LOCALAPPDATA", filepath.Join("C:", "Users", "x", "AppData", "Local"))

	cfg := &Config{}
	cfg.ApplyDefaults()

	want := filepath.Join("C:", "Users", "x", "AppData", "Local", "Programs", "Subtis")
	if cfg.InstallDir != want {
		t.Errorf("InstallDir = %q, want %q", cfg.InstallDir, want)
	}
}

func TestTag(t *testing.T) {
	if got := (&Config{Version: "2.1.0"}).Tag(); got != "v2.1.0" {
		t.Errorf("Tag() = %q, want v2.1.0", got)
	}
	if got := (&Config{}).Tag(); got != "" {
		t.Errorf("Tag() = %q, want empty", got)
	}
}
