// Package keymap implements the config parser, logical-key expander,
// and system filter (spec components D, E, F): it consumes tokenized
// statements from internal/configlex, resolves macros/logical
// keys/commands, and produces an immutable Config.
package keymap

import "github.com/Jai-JAP/keymapper/internal/keyseq"

// FilterKind selects how a Filter's Pattern is matched.
type FilterKind uint8

const (
	FilterExact FilterKind = iota
	FilterSubstring
	FilterRegex
)

// Filter matches a window class or title string. An empty Pattern
// matches anything, regardless of Kind.
type Filter struct {
	Kind            FilterKind
	Pattern         string
	CaseInsensitive bool
}

// ModifierTerm is one entry of a context's modifier= filter list: a
// logical key name, optionally negated with "!".
type ModifierTerm struct {
	Name string
	Not  bool
}

// Input is one concrete matchable pattern. Exactly one of OutputIndex
// (an index into the owning Context's Outputs) or Command is
// meaningful at a time: a plain mapping resolves to OutputIndex, a
// command-bound mapping resolves to Command, which is looked up in the
// matched context's (or an ancestor context's) CommandOutputs by the
// external runtime matcher.
type Input struct {
	Seq         keyseq.KeySequence
	OutputIndex int
	Command     string
}

// IsCommand reports whether this input dispatches through a command
// rather than a direct output index.
func (in Input) IsCommand() bool { return in.Command != "" }

// Context is one gated block of mappings, active when its System,
// Class, Title and Modifier filters all match.
type Context struct {
	Default bool
	System  string // "", "Linux", "Windows", or "MacOS"
	Class   Filter
	Title   Filter
	Modifiers []ModifierTerm

	Inputs         []Input
	Outputs        []keyseq.KeySequence
	CommandOutputs map[string]keyseq.KeySequence
}

// Action is a terminal action: a shell command referenced from an
// output sequence via the synthetic Action<N> key.
type Action struct {
	ShellText string
}

// Config is the immutable result of Parse. Contexts[0] is always the
// default context.
type Config struct {
	Actions  []Action
	Contexts []*Context
}

// Add implements keyseq.ActionSink: it appends a new action and
// returns its index, append-only, exactly as spec.md §4.D describes
// the actions table growing.
func (c *Config) Add(shellText string) int {
	c.Actions = append(c.Actions, Action{ShellText: shellText})
	return len(c.Actions) - 1
}
