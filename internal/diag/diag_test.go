package diag

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/Jai-JAP/keymapper/internal/keymap"
)

func nonTerminalFile(t *testing.T) *os.File {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "diag")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestPlainOutputWhenNotTerminal(t *testing.T) {
	f := nonTerminalFile(t)
	if UseColor(f) {
		t.Fatalf("expected a regular file to not be reported as a terminal")
	}
	if got := Success(f, "ok"); got != "ok" {
		t.Errorf("Success = %q, want %q", got, "ok")
	}
	if got := Error(f, "bad"); got != "bad" {
		t.Errorf("Error = %q, want %q", got, "bad")
	}
}

func TestHighlightConfigFallsBackToPlainText(t *testing.T) {
	f := nonTerminalFile(t)
	var buf bytes.Buffer
	src := "A >> B\n"
	if err := HighlightConfig(&buf, f, src); err != nil {
		t.Fatalf("HighlightConfig error: %v", err)
	}
	if buf.String() != src {
		t.Errorf("HighlightConfig output = %q, want verbatim %q", buf.String(), src)
	}
}

func TestRenderParseErrorShowsOffendingLine(t *testing.T) {
	f := nonTerminalFile(t)
	src := "A >> B\n[windo]\n"
	err := &keymap.ParseError{Line: 2, Msg: "malformed context header"}
	out := RenderParseError(f, err, strings.Split(src, "\n"))
	if !strings.Contains(out, "malformed context header") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "[windo]") {
		t.Errorf("output missing offending line: %q", out)
	}
}
