// Package keycode implements the static key table (spec component A):
// a case-sensitive mapping between configuration-language key names and
// the numeric key identifiers used throughout the rest of the module.
package keycode

import "fmt"

// Key is a 16-bit key identifier. Values 1..248 mirror Linux
// input-event-codes.h; values from 249 up name logical aggregates and
// virtual keys that never appear on the wire.
type Key uint16

// None is the zero value, matching Key::NONE in the reference runtime.
const None Key = 0

// Linux input-event-codes.h values, named after the code this module's
// configuration language uses for them (see nameTable for the mapping).
const (
	keyEscape Key = 1
	keyDigit2 Key = 2 // "1"
	keyDigit3 Key = 3 // "2"
	keyDigit4 Key = 4 // "3"
	keyDigit5 Key = 5 // "4"
	keyDigit6 Key = 6 // "5"
	keyDigit7 Key = 7 // "6"
	keyDigit8 Key = 8 // "7"
	keyDigit9 Key = 9 // "8"
	keyDigit10 Key = 10 // "9"
	keyDigit11 Key = 11 // "0"
	keyMinus   Key = 12
	keyEqual   Key = 13
	keyBackspace Key = 14
	keyTab     Key = 15
	keyQ Key = 16
	keyW Key = 17
	keyE Key = 18
	keyR Key = 19
	keyT Key = 20
	keyY Key = 21
	keyU Key = 22
	keyI Key = 23
	keyO Key = 24
	keyP Key = 25
	keyBracketLeft  Key = 26
	keyBracketRight Key = 27
	keyEnter        Key = 28
	keyControlLeft  Key = 29
	keyA Key = 30
	keyS Key = 31
	keyD Key = 32
	keyF Key = 33
	keyG Key = 34
	keyH Key = 35
	keyJ Key = 36
	keyK Key = 37
	keyL Key = 38
	keySemicolon Key = 39
	keyQuote     Key = 40
	keyBackquote Key = 41
	keyShiftLeft Key = 42
	keyBackslash Key = 43
	keyZ Key = 44
	keyX Key = 45
	keyC Key = 46
	keyV Key = 47
	keyB Key = 48
	keyN Key = 49
	keyM Key = 50
	keyComma Key = 51
	keyPeriod Key = 52
	keySlash  Key = 53
	keyShiftRight     Key = 54
	keyNumpadMultiply Key = 55
	keyAltLeft        Key = 56
	keySpace          Key = 57
	keyCapsLock       Key = 58
	keyF1  Key = 59
	keyF2  Key = 60
	keyF3  Key = 61
	keyF4  Key = 62
	keyF5  Key = 63
	keyF6  Key = 64
	keyF7  Key = 65
	keyF8  Key = 66
	keyF9  Key = 67
	keyF10 Key = 68
	keyNumLock    Key = 69
	keyScrollLock Key = 70
	keyNumpad7 Key = 71
	keyNumpad8 Key = 72
	keyNumpad9 Key = 73
	keyNumpadSubtract Key = 74
	keyNumpad4 Key = 75
	keyNumpad5 Key = 76
	keyNumpad6 Key = 77
	keyNumpadAdd Key = 78
	keyNumpad1 Key = 79
	keyNumpad2 Key = 80
	keyNumpad3 Key = 81
	keyNumpad0 Key = 82
	keyNumpadDecimal Key = 83
	keyIntlBackslash Key = 86
	keyF11 Key = 87
	keyF12 Key = 88
	keyIntlRo Key = 89
	keyKanaMode  Key = 93
	keyConvert   Key = 92
	keyNonConvert Key = 94
	keyNumpadEnter  Key = 96
	keyControlRight Key = 97
	keyNumpadDivide Key = 98
	keyPrintScreen  Key = 99
	keyAltRight     Key = 100
	keyHome     Key = 102
	keyArrowUp  Key = 103
	keyPageUp   Key = 104
	keyArrowLeft  Key = 105
	keyArrowRight Key = 106
	keyEnd        Key = 107
	keyArrowDown  Key = 108
	keyPageDown   Key = 109
	keyInsert     Key = 110
	keyDelete     Key = 111
	keyVolumeMute Key = 113
	keyVolumeDown Key = 114
	keyVolumeUp   Key = 115
	keyPower      Key = 116
	keyNumpadEqual Key = 117
	keyPause       Key = 119
	keyNumpadComma Key = 121
	keyMetaLeft  Key = 125
	keyMetaRight Key = 126
	keyContextMenu Key = 127
	keyUndo  Key = 131
	keyCopy  Key = 133
	keyOpen  Key = 134
	keyPaste Key = 135
	keyFind  Key = 136
	keyCut   Key = 137
	keyHelp  Key = 138
	keyEject Key = 161
	keyMediaTrackNext     Key = 163
	keyMediaPlayPause     Key = 164
	keyMediaTrackPrevious Key = 165
	keyMediaStop          Key = 166
	keyBrowserBack    Key = 158
	keyBrowserForward Key = 159
	keyEmail  Key = 215
	keyBrightnessDown Key = 224
	keyBrightnessUp   Key = 225
	keyMicMute Key = 248
)

// Logical aggregates and virtual keys, so Key is a total identifier
// space spanning both physical and virtual key space. internal/keymap
// expands Shift/Ctrl/Meta references into their Left/Right members
// before a sequence is parsed; ANY and Virtual1..Virtual8 are kept as
// single keys in parsed sequences.
const (
	keyAny Key = 249 + iota
	keyShift
	keyCtrl
	keyMeta
	keyVirtual1
	keyVirtual2
	keyVirtual3
	keyVirtual4
	keyVirtual5
	keyVirtual6
	keyVirtual7
	keyVirtual8
)

// Count is one past the highest assigned Key value.
const Count = keyVirtual8 + 1

// nameTable is the static, case-sensitive surface-language name table.
// Letters and digits use the plain single-character config name (spec
// §4.A); everything else uses the Linux symbol title-cased per spec's
// "initial-capital convention". Populated once, never mutated after
// init — duplicate names or codes here are a build-time programming
// error, not a runtime condition.
var nameTable = map[string]Key{
	"Escape": keyEscape,
	"1": keyDigit2, "2": keyDigit3, "3": keyDigit4, "4": keyDigit5,
	"5": keyDigit6, "6": keyDigit7, "7": keyDigit8, "8": keyDigit9,
	"9": keyDigit10, "0": keyDigit11,
	"Minus": keyMinus, "Equal": keyEqual, "Backspace": keyBackspace,
	"Tab": keyTab,
	"Q": keyQ, "W": keyW, "E": keyE, "R": keyR, "T": keyT, "Y": keyY,
	"U": keyU, "I": keyI, "O": keyO, "P": keyP,
	"BracketLeft": keyBracketLeft, "BracketRight": keyBracketRight,
	"Enter": keyEnter, "ControlLeft": keyControlLeft,
	"A": keyA, "S": keyS, "D": keyD, "F": keyF, "G": keyG, "H": keyH,
	"J": keyJ, "K": keyK, "L": keyL,
	"Semicolon": keySemicolon, "Quote": keyQuote, "Backquote": keyBackquote,
	"ShiftLeft": keyShiftLeft, "Backslash": keyBackslash,
	"Z": keyZ, "X": keyX, "C": keyC, "V": keyV, "B": keyB, "N": keyN, "M": keyM,
	"Comma": keyComma, "Period": keyPeriod, "Slash": keySlash,
	"ShiftRight": keyShiftRight, "NumpadMultiply": keyNumpadMultiply,
	"AltLeft": keyAltLeft, "Space": keySpace, "CapsLock": keyCapsLock,
	"F1": keyF1, "F2": keyF2, "F3": keyF3, "F4": keyF4, "F5": keyF5,
	"F6": keyF6, "F7": keyF7, "F8": keyF8, "F9": keyF9, "F10": keyF10,
	"NumLock": keyNumLock, "ScrollLock": keyScrollLock,
	"Numpad7": keyNumpad7, "Numpad8": keyNumpad8, "Numpad9": keyNumpad9,
	"NumpadSubtract": keyNumpadSubtract,
	"Numpad4": keyNumpad4, "Numpad5": keyNumpad5, "Numpad6": keyNumpad6,
	"NumpadAdd": keyNumpadAdd,
	"Numpad1": keyNumpad1, "Numpad2": keyNumpad2, "Numpad3": keyNumpad3,
	"Numpad0": keyNumpad0, "NumpadDecimal": keyNumpadDecimal,
	"IntlBackslash": keyIntlBackslash,
	"F11": keyF11, "F12": keyF12,
	"IntlRo": keyIntlRo, "Convert": keyConvert, "KanaMode": keyKanaMode,
	"NonConvert": keyNonConvert,
	"NumpadEnter": keyNumpadEnter, "ControlRight": keyControlRight,
	"NumpadDivide": keyNumpadDivide, "PrintScreen": keyPrintScreen,
	"AltRight": keyAltRight,
	"Home": keyHome, "ArrowUp": keyArrowUp, "PageUp": keyPageUp,
	"ArrowLeft": keyArrowLeft, "ArrowRight": keyArrowRight,
	"End": keyEnd, "ArrowDown": keyArrowDown, "PageDown": keyPageDown,
	"Insert": keyInsert, "Delete": keyDelete,
	"VolumeMute": keyVolumeMute, "VolumeDown": keyVolumeDown,
	"VolumeUp": keyVolumeUp, "Power": keyPower,
	"NumpadEqual": keyNumpadEqual, "Pause": keyPause,
	"NumpadComma": keyNumpadComma,
	"MetaLeft": keyMetaLeft, "MetaRight": keyMetaRight,
	"ContextMenu": keyContextMenu,
	"Undo": keyUndo, "Copy": keyCopy, "Open": keyOpen, "Paste": keyPaste,
	"Find": keyFind, "Cut": keyCut, "Help": keyHelp, "Eject": keyEject,
	"MediaTrackNext": keyMediaTrackNext, "MediaPlayPause": keyMediaPlayPause,
	"MediaTrackPrevious": keyMediaTrackPrevious, "MediaStop": keyMediaStop,
	"BrowserBack": keyBrowserBack, "BrowserForward": keyBrowserForward,
	"Email": keyEmail,
	"BrightnessDown": keyBrightnessDown, "BrightnessUp": keyBrightnessUp,
	"MicMute": keyMicMute,

	"ANY": keyAny,
	"Shift": keyShift, "Ctrl": keyCtrl, "Meta": keyMeta,
	"Virtual1": keyVirtual1, "Virtual2": keyVirtual2, "Virtual3": keyVirtual3,
	"Virtual4": keyVirtual4, "Virtual5": keyVirtual5, "Virtual6": keyVirtual6,
	"Virtual7": keyVirtual7, "Virtual8": keyVirtual8,
}

var reverseTable map[Key]string

func init() {
	reverseTable = make(map[Key]string, len(nameTable))
	for name, key := range nameTable {
		if existing, ok := reverseTable[key]; ok {
			panic(fmt.Sprintf("keycode: key %d has duplicate names %q and %q", key, existing, name))
		}
		reverseTable[key] = name
	}
}

// ByName resolves a surface-language key name to its Key, case-sensitive.
// It does not know about logical keys such as "Shift" being a disjunction
// of ShiftLeft/ShiftRight members — that table lives in internal/keymap,
// seeded from user configuration and the built-in aliases.
func ByName(name string) (Key, bool) {
	key, ok := nameTable[name]
	return key, ok
}

// NameByKey returns the canonical configuration-language name for a key.
// Ok is false for keys with no registered name (e.g. Action<N> synthetic
// keys, which the formatter renders specially rather than through this
// table).
func NameByKey(key Key) (string, bool) {
	name, ok := reverseTable[key]
	return name, ok
}

// IsBuiltin reports whether name already denotes a key in this table —
// used by the config parser to reject macros/logical keys that try to
// shadow a built-in name (spec invariant 6).
func IsBuiltin(name string) bool {
	_, ok := nameTable[name]
	return ok
}

// AllNames returns every registered key name, used by SuggestNames and
// by tests that want to enumerate the table.
func AllNames() []string {
	names := make([]string, 0, len(nameTable))
	for name := range nameTable {
		names = append(names, name)
	}
	return names
}
