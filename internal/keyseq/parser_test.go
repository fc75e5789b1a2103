package keyseq

import "testing"

type fakeActions struct {
	commands []string
}

func (f *fakeActions) Add(shellText string) int {
	f.commands = append(f.commands, shellText)
	return len(f.commands) - 1
}

func mustParse(t *testing.T, expr string, isInput bool, actions ActionSink) KeySequence {
	t.Helper()
	seq, err := Parse(expr, isInput, actions)
	if err != nil {
		t.Fatalf("Parse(%q, isInput=%v) error: %v", expr, isInput, err)
	}
	return seq
}

func TestWorkedExamplesInput(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"A", "+A ~A"},
		{"A B", "+A ~A +B ~B"},
		{"(A B)", "*A *B +A +B ~A ~B"},
		{"A{B}", "+A +B ~B ~A"},
		{"A{B C}", "+A +B ~B +C ~C ~A"},
		{"A(B C)", "+A ~A *B *C +B +C ~B ~C"},
		{"A{(B C)}", "+A *B *C +B +C ~B ~C ~A"},
		{"(A B){C D}", "*A *B +A +B +C ~C +D ~D ~A ~B"},
	}
	for _, tc := range cases {
		seq := mustParse(t, tc.expr, true, nil)
		got := Format(seq)
		if got != tc.want {
			t.Errorf("Parse(%q, input) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestWorkedExamplesOutput(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"A", "+A -A"},
		{"A{B}", "+A +B -B -A"},
		{"(A B){C}", "+A +B +C -C -A -B"},
		{"(A B)", "+A +B -A -B"},
		{"A{B C}", "+A +B -B +C -C -A"},
		{"A(B C)", "+A -A +B +C -B -C"},
		{"A{(B C)}", "+A +B +C -C -B -A"},
		{"(A B){C D}", "+A +B +C -C +D -D -A -B"},
	}
	for _, tc := range cases {
		seq := mustParse(t, tc.expr, false, nil)
		got := Format(seq)
		if got != tc.want {
			t.Errorf("Parse(%q, output) = %q, want %q", tc.expr, got, tc.want)
		}
	}
}

func TestNotAtom(t *testing.T) {
	seq := mustParse(t, "!A +E", true, nil)
	got := Format(seq)
	want := "!A +E ~E"
	if got != want {
		t.Errorf("Parse(%q) = %q, want %q", "!A +E", got, want)
	}
}

func TestTerminalAction(t *testing.T) {
	sink := &fakeActions{}
	seq := mustParse(t, "$(ls -la)", false, sink)
	if len(sink.commands) != 1 || sink.commands[0] != "ls -la" {
		t.Fatalf("expected one registered action %q, got %v", "ls -la", sink.commands)
	}
	got := Format(seq)
	if got != "+Action0" {
		t.Errorf("Format(action) = %q, want %q", got, "+Action0")
	}
}

func TestTerminalActionInputRejected(t *testing.T) {
	sink := &fakeActions{}
	if _, err := Parse("$(ls)", true, sink); err == nil {
		t.Errorf("expected error for terminal action on input side")
	}
}

func TestTerminalActionInsideGroupRejected(t *testing.T) {
	sink := &fakeActions{}
	if _, err := Parse("(A $(ls))", false, sink); err == nil {
		t.Errorf("expected error for terminal action inside a group")
	}
	if _, err := Parse("A{ $(ls) }", false, sink); err == nil {
		t.Errorf("expected error for terminal action inside a brace")
	}
}

func TestUnknownKey(t *testing.T) {
	_, err := Parse("NotAKey", true, nil)
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if _, ok := err.(*UnknownKeyError); !ok {
		t.Errorf("error = %T, want *UnknownKeyError", err)
	}
}

func TestNoDownMatchedProduced(t *testing.T) {
	seq := mustParse(t, "(A B){C D}", true, nil)
	for _, ev := range seq {
		if ev.State == DownMatched {
			t.Fatalf("Parse produced DownMatched, which the parser must never emit: %v", seq)
		}
	}
}

func TestUnmatchedBracketsAreErrors(t *testing.T) {
	for _, expr := range []string{"(A B", "A{B", "A B)", "A}B"} {
		if _, err := Parse(expr, true, nil); err == nil {
			t.Errorf("Parse(%q) expected an error, got none", expr)
		}
	}
}
