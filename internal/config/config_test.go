package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitializeSetsPathsUnderXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	want := filepath.Join(dir, "keymapper")
	if ConfigDir != want {
		t.Errorf("ConfigDir = %q, want %q", ConfigDir, want)
	}
	if want := filepath.Join(want, "keymapper.conf"); DefaultConfigPath != want {
		t.Errorf("DefaultConfigPath = %q, want %q", DefaultConfigPath, want)
	}
	if _, err := os.Stat(ConfigDir); err != nil {
		t.Errorf("ConfigDir was not created: %v", err)
	}
}

func TestResolvePrefersExplicitPath(t *testing.T) {
	got, err := Resolve("/some/explicit/path.conf")
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if got != "/some/explicit/path.conf" {
		t.Errorf("Resolve() = %q, want explicit path", got)
	}
}

func TestResolveErrorsWhenNoDefaultExists(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	if _, err := Resolve(""); err == nil {
		t.Fatalf("expected an error when no default config file exists")
	}
}
