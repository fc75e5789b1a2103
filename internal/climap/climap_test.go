package climap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCheckAcceptsValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymapper.conf")
	if err := os.WriteFile(path, []byte("A >> B\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := Check(CheckOptions{FilePath: path}); err != nil {
		t.Fatalf("Check() error: %v", err)
	}
}

func TestCheckReportsReadError(t *testing.T) {
	if err := Check(CheckOptions{FilePath: filepath.Join(t.TempDir(), "missing.conf")}); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestDumpTextFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymapper.conf")
	if err := os.WriteFile(path, []byte("A >> B\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := Dump(DumpOptions{FilePath: path, Format: "text"}); err != nil {
		t.Fatalf("Dump() error: %v", err)
	}
}

func TestDumpRejectsUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keymapper.conf")
	if err := os.WriteFile(path, []byte("A >> B\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := Dump(DumpOptions{FilePath: path, Format: "xml"}); err == nil {
		t.Fatalf("expected an error for an unknown dump format")
	}
}

func TestFormatPrintsCanonicalSequence(t *testing.T) {
	if err := Format(FormatOptions{Expr: "A", IsInput: true}); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
}
