// Package keyseq implements the key-sequence parse algebra (spec
// components B and G): lowering a grouping expression into a canonical
// stream of key-state atoms, and the inverse formatter.
package keyseq

import (
	"fmt"

	"github.com/Jai-JAP/keymapper/internal/keycode"
)

// KeyState tags a KeyEvent with the transition it demands.
type KeyState uint8

const (
	Down KeyState = iota
	Up
	Not
	DownAsync
	UpAsync
	DownMatched
)

func (s KeyState) String() string {
	switch s {
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Not:
		return "Not"
	case DownAsync:
		return "DownAsync"
	case UpAsync:
		return "UpAsync"
	case DownMatched:
		return "DownMatched"
	default:
		return fmt.Sprintf("KeyState(%d)", uint8(s))
	}
}

// KeyEvent pairs a key with the state it must transition to.
type KeyEvent struct {
	Key   keycode.Key
	State KeyState
}

// KeySequence is the canonical low-level form produced by Parse and
// consumed by Format.
type KeySequence []KeyEvent

// actionBase starts the synthetic key range used to reference terminal
// actions by index (Action<N> in the surface language). It sits well
// above keycode.Count so it never collides with a real or logical key.
const actionBase keycode.Key = 0x4000

// ActionKey returns the synthetic key that represents the n-th terminal
// action in a Config's action table.
func ActionKey(n int) keycode.Key {
	return actionBase + keycode.Key(n)
}

// IsActionKey reports whether k was produced by ActionKey.
func IsActionKey(k keycode.Key) bool {
	return k >= actionBase
}

// ActionIndex recovers the index passed to ActionKey. Behavior is
// undefined if IsActionKey(k) is false.
func ActionIndex(k keycode.Key) int {
	return int(k - actionBase)
}

// ActionSink lets a caller of Parse allocate terminal actions as they
// are encountered in an output expression. The config parser (package
// keymap) implements this over its own append-only action table; Parse
// never owns that table itself, since action indices are global to a
// Config, not to one sequence.
type ActionSink interface {
	Add(shellText string) int
}

// UnknownKeyError reports an identifier that doesn't resolve to a
// physical or logical-aggregate key in the key table. By the time
// Parse runs, macro and logical-key substitution has already happened,
// so any surviving unresolved identifier is a genuine unknown key.
type UnknownKeyError struct {
	Name string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q", e.Name)
}

// SyntaxError reports a lexical or grouping defect in an expression:
// unterminated groups, stray brackets, a terminal action nested inside
// a group, or a terminal action on the input side.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return e.Msg }
