package keycode

import "github.com/sahilm/fuzzy"

// SuggestNames returns up to n known key names ranked by similarity to
// name, for use in a ParseError hint when an identifier doesn't resolve
// to a key, macro, or logical key. Callers fold this suggestion into
// their own error message; this package never formats errors itself.
func SuggestNames(name string, n int) []string {
	matches := fuzzy.Find(name, AllNames())
	if len(matches) > n {
		matches = matches[:n]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out
}
