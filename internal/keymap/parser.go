package keymap

import (
	"fmt"
	"io"
	"strings"

	"github.com/Jai-JAP/keymapper/internal/configlex"
	"github.com/Jai-JAP/keymapper/internal/keycode"
	"github.com/Jai-JAP/keymapper/internal/keyseq"
)

// builtinLogicalKeys seeds the logical-key table with the aggregates
// the original runtime always provides, before any user assignment is
// processed (spec §3.2 "Logical Key"): Shift, Ctrl/Control and Meta
// each resolve to their Left/Right evdev pair.
var builtinLogicalKeys = map[string][]string{
	"Shift":   {"ShiftLeft", "ShiftRight"},
	"Ctrl":    {"ControlLeft", "ControlRight"},
	"Control": {"ControlLeft", "ControlRight"},
	"Meta":    {"MetaLeft", "MetaRight"},
}

type parser struct {
	cfg    *Config
	cur    *Context
	macros map[string]string
	logical map[string][]string

	commands        map[string]bool
	cmdInputBound   map[string]bool // has >=1 Input→Command binding anywhere
	cmdOutputBound  map[string]bool // has >=1 Command→Output binding anywhere
	cmdDefaultBound map[string]bool // has an Input→Command binding in the default context
}

// Parse reads a full configuration stream and returns the resolved
// Config (spec §6 "parse(input_stream) -> Config", the single public
// entry point). It is a pure function of r's contents: every symbol
// table used along the way is local to this call.
func Parse(r io.Reader) (*Config, error) {
	stmts, err := configlex.Tokenize(r)
	if err != nil {
		return nil, err
	}
	return parseStatements(stmts)
}

// parseStatements runs the parser over an already-tokenized statement
// stream; ParseFiles uses this to parse statements read concurrently
// from several files as a single logical configuration.
func parseStatements(stmts []configlex.Statement) (*Config, error) {
	def := &Context{Default: true, CommandOutputs: map[string]keyseq.KeySequence{}}
	p := &parser{
		cfg:    &Config{Contexts: []*Context{def}},
		cur:    def,
		macros: map[string]string{},
		logical: func() map[string][]string {
			m := make(map[string][]string, len(builtinLogicalKeys))
			for k, v := range builtinLogicalKeys {
				m[k] = append([]string(nil), v...)
			}
			return m
		}(),
		commands:        map[string]bool{},
		cmdInputBound:   map[string]bool{},
		cmdOutputBound:  map[string]bool{},
		cmdDefaultBound: map[string]bool{},
	}
	for _, st := range stmts {
		if err := p.statement(st); err != nil {
			return nil, err
		}
	}
	if err := p.resolve(); err != nil {
		return nil, err
	}
	filterSystem(p.cfg)
	return p.cfg, nil
}

func (p *parser) statement(st configlex.Statement) error {
	text := st.Text
	if configlex.IsContextHeader(text) {
		return p.contextHeader(st.Line, text)
	}
	if lhs, rhs, ok := configlex.SplitTopLevel(text, ">>"); ok {
		return p.mapping(st.Line, strings.TrimSpace(lhs), strings.TrimSpace(rhs))
	}
	if name, rhs, ok := configlex.SplitTopLevel(text, "="); ok {
		return p.assignment(st.Line, strings.TrimSpace(name), strings.TrimSpace(rhs))
	}
	return errf(st.Line, "malformed statement %q", text)
}

func (p *parser) contextHeader(line int, text string) error {
	spec, err := parseContextHeader(text)
	if err != nil {
		return errf(line, "%s", err.Error())
	}
	if spec.Default {
		ctx := p.cfg.Contexts[0]
		if spec.Class != nil {
			ctx.Class = *spec.Class
		}
		if spec.Title != nil {
			ctx.Title = *spec.Title
		}
		if spec.System != "" {
			ctx.System = spec.System
		}
		if spec.Modifiers != nil {
			ctx.Modifiers = spec.Modifiers
		}
		p.cur = ctx
		return nil
	}
	ctx := &Context{CommandOutputs: map[string]keyseq.KeySequence{}}
	if spec.Class != nil {
		ctx.Class = *spec.Class
	}
	if spec.Title != nil {
		ctx.Title = *spec.Title
	}
	ctx.System = spec.System
	ctx.Modifiers = spec.Modifiers
	p.cfg.Contexts = append(p.cfg.Contexts, ctx)
	p.cur = ctx
	return nil
}

func (p *parser) assignment(line int, name, rhs string) error {
	if name == "" {
		return errf(line, "empty assignment name")
	}
	if keycode.IsBuiltin(name) {
		return errf(line, "%q collides with a built-in key name", name)
	}
	rhs = substituteMacros(rhs, p.macros)

	alts := splitAlternatives(rhs)
	if len(alts) > 1 {
		members, err := p.flattenLogicalAlternatives(line, alts)
		if err != nil {
			return err
		}
		delete(p.macros, name)
		p.logical[name] = members
		return nil
	}
	delete(p.logical, name)
	p.macros[name] = rhs
	return nil
}

// flattenLogicalAlternatives resolves each "|"-separated operand of a
// logical-key definition to a flat member list: a plain key name
// contributes itself, and an earlier logical key contributes its own
// (already flattened) members.
func (p *parser) flattenLogicalAlternatives(line int, alts []string) ([]string, error) {
	var members []string
	for _, alt := range alts {
		if ms, ok := p.logical[alt]; ok {
			members = append(members, ms...)
			continue
		}
		if _, ok := keycode.ByName(alt); ok {
			members = append(members, alt)
			continue
		}
		return nil, errf(line, "%q in logical key definition is neither a key nor an earlier logical key", alt)
	}
	return members, nil
}

func (p *parser) mapping(line int, lhs, rhs string) error {
	lhs = substituteMacros(lhs, p.macros)
	rhs = substituteMacros(rhs, p.macros)

	if p.commands[lhs] {
		return p.commandOutput(line, lhs, rhs)
	}
	if isBareIdent(rhs) && !isKnownAtomKey(rhs) && p.logical[rhs] == nil {
		return p.inputCommand(line, lhs, rhs)
	}
	return p.inputOutput(line, lhs, rhs)
}

// isBareIdent reports whether s is a single identifier token with no
// sequence-language syntax around it — the shape a command name or a
// single-key output must have.
func isBareIdent(s string) bool {
	if s == "" || !isIdentStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}

func isKnownAtomKey(name string) bool {
	_, ok := keycode.ByName(name)
	return ok
}

func (p *parser) inputOutput(line int, lhs, rhs string) error {
	inputs, err := p.expandAndParseInput(lhs)
	if err != nil {
		return errf(line, "%s", err.Error())
	}
	outputs, err := p.expandAndParseOutput(rhs)
	if err != nil {
		return errf(line, "%s", err.Error())
	}
	return p.linkInputsOutputs(line, inputs, outputs)
}

// linkInputsOutputs implements spec.md §4.E's pairing rule: equal
// counts zip 1:1, a single shared output fans out to every input,
// anything else is an unresolvable expansion mismatch.
func (p *parser) linkInputsOutputs(line int, inputs, outputs []keyseq.KeySequence) error {
	switch {
	case len(outputs) == 1:
		idx := len(p.cur.Outputs)
		p.cur.Outputs = append(p.cur.Outputs, outputs[0])
		for _, in := range inputs {
			if err := p.addInput(line, in, idx, ""); err != nil {
				return err
			}
		}
	case len(outputs) == len(inputs):
		for i, out := range outputs {
			idx := len(p.cur.Outputs)
			p.cur.Outputs = append(p.cur.Outputs, out)
			if err := p.addInput(line, inputs[i], idx, ""); err != nil {
				return err
			}
		}
	default:
		return errf(line, "logical-key expansion produced %d inputs but %d outputs", len(inputs), len(outputs))
	}
	return nil
}

func (p *parser) addInput(line int, seq keyseq.KeySequence, outIdx int, command string) error {
	wrapped, err := p.applyModifiers(p.cur, seq)
	if err != nil {
		return errf(line, "%s", err.Error())
	}
	for _, w := range wrapped {
		p.cur.Inputs = append(p.cur.Inputs, Input{Seq: w, OutputIndex: outIdx, Command: command})
	}
	return nil
}

func (p *parser) inputCommand(line int, lhs, cmdName string) error {
	p.commands[cmdName] = true
	p.cmdInputBound[cmdName] = true
	isDefault := p.cur == p.cfg.Contexts[0]
	if isDefault {
		if p.cmdDefaultBound[cmdName] {
			return errf(line, "command %q redefined in the default context", cmdName)
		}
		p.cmdDefaultBound[cmdName] = true
	}
	inputs, err := p.expandAndParseInput(lhs)
	if err != nil {
		return errf(line, "%s", err.Error())
	}
	for _, in := range inputs {
		if err := p.addInput(line, in, -1, cmdName); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) commandOutput(line int, cmdName, rhs string) error {
	if isBareIdent(rhs) && p.commands[rhs] {
		return errf(line, "command-to-command mapping %q >> %q is forbidden", cmdName, rhs)
	}
	if _, exists := p.cur.CommandOutputs[cmdName]; exists {
		return errf(line, "duplicate output binding for command %q in this context", cmdName)
	}
	outputs, err := p.expandAndParseOutput(rhs)
	if err != nil {
		return errf(line, "%s", err.Error())
	}
	if len(outputs) != 1 {
		return errf(line, "command %q output may not reference a logical key", cmdName)
	}
	p.cmdOutputBound[cmdName] = true
	p.cur.CommandOutputs[cmdName] = outputs[0]
	return nil
}

// resolve runs the post-parse validation pass (spec §4.D "Resolution
// pass"): every command touched by the file must have at least one
// input binding and at least one output binding.
func (p *parser) resolve() error {
	for name := range p.commands {
		if !p.cmdInputBound[name] {
			return fmt.Errorf("command %q has an output binding but is never used as an input", name)
		}
		if !p.cmdOutputBound[name] {
			return fmt.Errorf("command %q is never bound to an output", name)
		}
	}
	for i, ctx := range p.cfg.Contexts {
		for _, in := range ctx.Inputs {
			if in.Command == "" && (in.OutputIndex < 0 || in.OutputIndex >= len(ctx.Outputs)) {
				return fmt.Errorf("context %d: input has an out-of-range output index %d", i, in.OutputIndex)
			}
		}
	}
	return nil
}
