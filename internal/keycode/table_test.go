package keycode

import "testing"

func TestByNameRoundTrip(t *testing.T) {
	cases := []string{"A", "Z", "0", "9", "ArrowLeft", "ShiftLeft", "IntlBackslash", "Virtual1", "Virtual8", "ANY"}
	for _, name := range cases {
		key, ok := ByName(name)
		if !ok {
			t.Fatalf("ByName(%q) = not found", name)
		}
		got, ok := NameByKey(key)
		if !ok {
			t.Fatalf("NameByKey(%d) for %q = not found", key, name)
		}
		if got != name {
			t.Errorf("NameByKey(ByName(%q)) = %q, want %q", name, got, name)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, ok := ByName("NotAKey"); ok {
		t.Errorf("ByName(%q) unexpectedly found", "NotAKey")
	}
	if _, ok := ByName("a"); ok {
		t.Errorf("ByName is case-sensitive, %q must not resolve to %q", "a", "A")
	}
	if _, ok := ByName("Virtual0"); ok {
		t.Errorf("ByName(%q) unexpectedly found; virtuals are 1-indexed", "Virtual0")
	}
	if _, ok := ByName("Virtual9"); ok {
		t.Errorf("ByName(%q) unexpectedly found; only 8 virtuals exist", "Virtual9")
	}
}

func TestIsBuiltin(t *testing.T) {
	if !IsBuiltin("Shift") {
		t.Errorf("IsBuiltin(%q) = false, want true", "Shift")
	}
	if IsBuiltin("MyMacro") {
		t.Errorf("IsBuiltin(%q) = true, want false", "MyMacro")
	}
}

func TestNoDuplicateCodes(t *testing.T) {
	seen := make(map[Key]string)
	for _, name := range AllNames() {
		key, _ := ByName(name)
		if other, ok := seen[key]; ok {
			t.Errorf("key %d has two names: %q and %q", key, other, name)
		}
		seen[key] = name
	}
}

func TestSuggestNames(t *testing.T) {
	got := SuggestNames("ArowLeft", 3)
	if len(got) == 0 {
		t.Fatalf("SuggestNames returned no suggestions")
	}
	found := false
	for _, name := range got {
		if name == "ArrowLeft" {
			found = true
		}
	}
	if !found {
		t.Errorf("SuggestNames(%q) = %v, want it to contain %q", "ArowLeft", got, "ArrowLeft")
	}
}
