package keymap

import (
	"strings"
	"testing"

	"github.com/Jai-JAP/keymapper/internal/keyseq"
)

func mustParse(t *testing.T, src string) *Config {
	t.Helper()
	cfg, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", src, err)
	}
	return cfg
}

func formatAll(seqs ...keyseq.KeySequence) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = keyseq.Format(s)
	}
	return out
}

func TestScenarioPlainMapping(t *testing.T) {
	cfg := mustParse(t, "A >> B\n")
	if len(cfg.Contexts) != 1 {
		t.Fatalf("got %d contexts, want 1", len(cfg.Contexts))
	}
	ctx := cfg.Contexts[0]
	if len(ctx.Inputs) != 1 || len(ctx.Outputs) != 1 {
		t.Fatalf("got %d inputs, %d outputs", len(ctx.Inputs), len(ctx.Outputs))
	}
	if got := keyseq.Format(ctx.Inputs[0].Seq); got != "+A ~A" {
		t.Errorf("input = %q, want %q", got, "+A ~A")
	}
	if got := keyseq.Format(ctx.Outputs[ctx.Inputs[0].OutputIndex]); got != "+B -B" {
		t.Errorf("output = %q, want %q", got, "+B -B")
	}
}

func TestScenarioLogicalKeyFanOutSharedOutput(t *testing.T) {
	cfg := mustParse(t, "Shift{A} >> B\n")
	ctx := cfg.Contexts[0]
	if len(ctx.Inputs) != 2 {
		t.Fatalf("got %d inputs, want 2", len(ctx.Inputs))
	}
	for _, in := range ctx.Inputs {
		if in.OutputIndex != 0 {
			t.Errorf("input %v has output_index %d, want 0", in, in.OutputIndex)
		}
	}
	got := formatAll(ctx.Inputs[0].Seq, ctx.Inputs[1].Seq)
	want := []string{"+ShiftLeft +A ~A ~ShiftLeft", "+ShiftRight +A ~A ~ShiftRight"}
	if got[0] != want[0] || got[1] != want[1] {
		t.Errorf("inputs = %v, want %v", got, want)
	}
	if out := keyseq.Format(ctx.Outputs[0]); out != "+B -B" {
		t.Errorf("output = %q, want %q", out, "+B -B")
	}
}

func TestScenarioMacroExpansion(t *testing.T) {
	cfg := mustParse(t, "MyMacro = A B\nMyMacro >> C\n")
	ctx := cfg.Contexts[0]
	if len(ctx.Inputs) != 1 {
		t.Fatalf("got %d inputs, want 1", len(ctx.Inputs))
	}
	if got := keyseq.Format(ctx.Inputs[0].Seq); got != "+A ~A +B ~B" {
		t.Errorf("input = %q, want %q", got, "+A ~A +B ~B")
	}
	if got := keyseq.Format(ctx.Outputs[0]); got != "+C -C" {
		t.Errorf("output = %q, want %q", got, "+C -C")
	}
}

func TestScenarioCommandIndirectionWithAction(t *testing.T) {
	cfg := mustParse(t, "A >> action\naction >> $(ls -la)\n")
	if len(cfg.Actions) != 1 || cfg.Actions[0].ShellText != "ls -la" {
		t.Fatalf("actions = %v, want one action %q", cfg.Actions, "ls -la")
	}
	ctx := cfg.Contexts[0]
	if len(ctx.Inputs) != 1 || ctx.Inputs[0].Command != "action" {
		t.Fatalf("input = %+v, want Command=%q", ctx.Inputs, "action")
	}
	out, ok := ctx.CommandOutputs["action"]
	if !ok {
		t.Fatalf("no CommandOutputs entry for %q", "action")
	}
	if got := keyseq.Format(out); got != "+Action0" {
		t.Errorf("command output = %q, want %q", got, "+Action0")
	}
}

func TestScenarioSystemFilterDropsNonMatching(t *testing.T) {
	src := "[system=\"Linux\"]\nA >> linuxcmd\nlinuxcmd >> $(echo linux)\n[system=\"Windows\"]\nB >> C\n"
	cfg := mustParse(t, src)
	if HostOS() != "Linux" {
		t.Skipf("this build's host OS is %q, not Linux; scenario assumes a Linux build", HostOS())
	}
	for _, ctx := range cfg.Contexts {
		if ctx.System == "Windows" {
			t.Fatalf("Windows context should have been dropped on a Linux build: %+v", cfg.Contexts)
		}
	}
	var sawLinux bool
	for _, ctx := range cfg.Contexts {
		if ctx.System == "Linux" {
			sawLinux = true
			if len(ctx.Inputs) != 1 || ctx.Inputs[0].Command != "linuxcmd" {
				t.Errorf("linux context inputs = %+v", ctx.Inputs)
			}
		}
	}
	if !sawLinux {
		t.Fatalf("expected the Linux context to survive filtering")
	}
}

func TestScenarioHeldLogicalKeySharedOutput(t *testing.T) {
	cfg := mustParse(t, "Ext = IntlBackslash | AltRight\nExt{A} >> ArrowLeft\n")
	ctx := cfg.Contexts[0]
	if len(ctx.Inputs) != 2 {
		t.Fatalf("got %d inputs, want 2", len(ctx.Inputs))
	}
	got := formatAll(ctx.Inputs[0].Seq, ctx.Inputs[1].Seq)
	want := []string{"+IntlBackslash +A ~A ~IntlBackslash", "+AltRight +A ~A ~AltRight"}
	if got[0] != want[0] || got[1] != want[1] {
		t.Errorf("inputs = %v, want %v", got, want)
	}
	if ctx.Inputs[0].OutputIndex != ctx.Inputs[1].OutputIndex {
		t.Errorf("expected both inputs to share one output index, got %d and %d",
			ctx.Inputs[0].OutputIndex, ctx.Inputs[1].OutputIndex)
	}
}

func TestErrorUnboundCommand(t *testing.T) {
	if _, err := Parse(strings.NewReader("C >> CommandA\n")); err == nil {
		t.Fatalf("expected error for unbound command")
	}
}

func TestErrorCommandToCommand(t *testing.T) {
	src := "X >> CommandA\nCommandA >> $(ls)\nY >> CommandB\nCommandA >> CommandB\n"
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("expected error for command-to-command mapping")
	}
}

func TestErrorInvalidContextHeader(t *testing.T) {
	if _, err := Parse(strings.NewReader("[windo]\n")); err == nil {
		t.Fatalf("expected error for invalid context header")
	}
}

func TestErrorSystemFilterRejectsRegex(t *testing.T) {
	if _, err := Parse(strings.NewReader("[system=/Linux/i]\nA >> B\n")); err == nil {
		t.Fatalf("expected error for system filter given as a regex")
	}
}

func TestErrorMacroCollidesWithKey(t *testing.T) {
	if _, err := Parse(strings.NewReader("Space = Enter\n")); err == nil {
		t.Fatalf("expected error for macro name colliding with a built-in key")
	}
}

func TestErrorShellInsideGroup(t *testing.T) {
	if _, err := Parse(strings.NewReader("A >> (A $(ls))\n")); err == nil {
		t.Fatalf("expected error for a terminal action inside a group")
	}
}

func TestNoDownMatchedAnywhere(t *testing.T) {
	cfg := mustParse(t, "(A B){C D} >> X\n")
	for _, ctx := range cfg.Contexts {
		for _, in := range ctx.Inputs {
			for _, ev := range in.Seq {
				if ev.State == keyseq.DownMatched {
					t.Fatalf("input sequence contains DownMatched: %v", in.Seq)
				}
			}
		}
	}
}

func TestContextFilterEmptyMatchesAny(t *testing.T) {
	var f Filter
	ok, err := f.Match("anything")
	if err != nil || !ok {
		t.Fatalf("empty filter should match any string, got ok=%v err=%v", ok, err)
	}
}

func TestModifierContextPrefixesInput(t *testing.T) {
	src := "[modifier=\"Shift\"]\nA >> B\n"
	cfg := mustParse(t, src)
	if len(cfg.Contexts) != 2 {
		t.Fatalf("got %d contexts, want 2", len(cfg.Contexts))
	}
	ctx := cfg.Contexts[1]
	if len(ctx.Inputs) != 2 {
		t.Fatalf("got %d inputs, want 2 (one per Shift member)", len(ctx.Inputs))
	}
	got := formatAll(ctx.Inputs[0].Seq, ctx.Inputs[1].Seq)
	want := []string{"+ShiftLeft +A ~A ~ShiftLeft", "+ShiftRight +A ~A ~ShiftRight"}
	if got[0] != want[0] || got[1] != want[1] {
		t.Errorf("inputs = %v, want %v", got, want)
	}
}
