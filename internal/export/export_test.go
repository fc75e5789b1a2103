package export

import (
	"strings"
	"testing"

	"github.com/Jai-JAP/keymapper/internal/keymap"
)

func TestYAMLRoundTripShape(t *testing.T) {
	cfg, err := keymap.Parse(strings.NewReader("A >> B\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := YAML(cfg)
	if err != nil {
		t.Fatalf("YAML error: %v", err)
	}
	if !strings.Contains(string(out), "+A ~A") || !strings.Contains(string(out), "+B -B") {
		t.Errorf("YAML output missing expected sequences: %s", out)
	}
}

func TestJSONRoundTripShape(t *testing.T) {
	cfg, err := keymap.Parse(strings.NewReader("A >> B\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := JSON(cfg)
	if err != nil {
		t.Fatalf("JSON error: %v", err)
	}
	if !strings.Contains(string(out), `"+A ~A"`) {
		t.Errorf("JSON output missing expected input sequence: %s", out)
	}
}
