package keyseq

import (
	"fmt"
	"strings"

	"github.com/Jai-JAP/keymapper/internal/keycode"
)

func statePrefix(s KeyState) byte {
	switch s {
	case Down:
		return '+'
	case Up:
		return '-'
	case Not:
		return '!'
	case DownAsync:
		return '*'
	case UpAsync:
		return '~'
	case DownMatched:
		return '#'
	default:
		panic(fmt.Sprintf("keyseq: unknown KeyState %d", s))
	}
}

// Format renders seq as the canonical space-separated atom text used
// by diagnostics and tests (spec component G): each event is a state
// prefix followed by the key's name, or "Action<N>" for a terminal
// action reference.
func Format(seq KeySequence) string {
	parts := make([]string, len(seq))
	for i, ev := range seq {
		parts[i] = FormatEvent(ev)
	}
	return strings.Join(parts, " ")
}

// FormatEvent renders a single atom, e.g. "+A" or "~Action0".
func FormatEvent(ev KeyEvent) string {
	if IsActionKey(ev.Key) {
		return fmt.Sprintf("%cAction%d", statePrefix(ev.State), ActionIndex(ev.Key))
	}
	name, ok := keycode.NameByKey(ev.Key)
	if !ok {
		name = fmt.Sprintf("Key(%d)", ev.Key)
	}
	return fmt.Sprintf("%c%s", statePrefix(ev.State), name)
}
