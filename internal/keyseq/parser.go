package keyseq

import (
	"fmt"

	"github.com/Jai-JAP/keymapper/internal/keycode"
)

// Parse lowers one key-sequence expression — the left-hand or
// right-hand side of a mapping — into its canonical KeySequence.
// isInput selects input-side semantics (UpAsync release markers,
// DownAsync group presses, "!" atoms permitted) versus output-side
// semantics (Up release markers, no DownAsync, terminal actions
// permitted at top level). actions may be nil if the expression is
// known not to contain "$(...)"; any terminal action then fails.
//
// Parse implements the grouping algebra from the two-list state
// machine (keysNotUp/keyBuffer) over parenthesis and brace nesting: see
// the worked examples this function is built to reproduce exactly.
func Parse(expr string, isInput bool, actions ActionSink) (KeySequence, error) {
	toks, err := lex(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: toks, isInput: isInput, actions: actions}
	if err := p.parseSeq(0, 0); err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected %q", describeTokens(p.tokens[p.pos:]))}
	}
	return p.out, nil
}

type parser struct {
	tokens    []token
	pos       int
	isInput   bool
	actions   ActionSink
	keysNotUp []keycode.Key
	out       KeySequence
}

func (p *parser) peek() token    { return p.tokens[p.pos] }
func (p *parser) advance() token { t := p.tokens[p.pos]; p.pos++; return t }

func (p *parser) emit(k keycode.Key, s KeyState) {
	p.out = append(p.out, KeyEvent{Key: k, State: s})
}

func (p *parser) resolve(name string) (keycode.Key, error) {
	k, ok := keycode.ByName(name)
	if !ok {
		return 0, &UnknownKeyError{Name: name}
	}
	return k, nil
}

// releaseState is the marker used when a key leaves keysNotUp: "may
// release any time" on the input side, a committed release on output.
func (p *parser) releaseState() KeyState {
	if p.isInput {
		return UpAsync
	}
	return Up
}

// boundary is the core flush operation: release every key in
// keysNotUp[mark:] that the new buffer doesn't re-press, then press
// the new buffer's keys. Order matters: release before press, exactly
// reproducing "A B" -> "+A ~A +B ~B".
func (p *parser) boundary(buffer []keycode.Key, mark int) {
	rel := p.releaseState()
	scope := p.keysNotUp[mark:]
	kept := scope[:0:0]
	for _, k := range scope {
		if containsKey(buffer, k) {
			kept = append(kept, k)
		} else {
			p.emit(k, rel)
		}
	}
	p.keysNotUp = append(p.keysNotUp[:mark], kept...)
	for _, k := range buffer {
		if !containsKey(p.keysNotUp[mark:], k) {
			p.emit(k, Down)
			p.keysNotUp = append(p.keysNotUp, k)
		}
	}
}

// pressHold commits keys as held (spec §4.B rule 5): emitted as a
// plain Down, added to keysNotUp, with no release comparison — used
// when a bare atom is immediately followed by "{".
func (p *parser) pressHold(keys []keycode.Key) {
	for _, k := range keys {
		p.emit(k, Down)
		p.keysNotUp = append(p.keysNotUp, k)
	}
}

// releaseHold ends a "X{...}" held scope: release exactly these keys,
// in the order they were held, and drop them from keysNotUp.
func (p *parser) releaseHold(keys []keycode.Key, mark int) {
	rel := p.releaseState()
	for _, k := range keys {
		p.emit(k, rel)
	}
	p.keysNotUp = append(p.keysNotUp[:mark], p.keysNotUp[mark+len(keys):]...)
}

func containsKey(keys []keycode.Key, k keycode.Key) bool {
	for _, x := range keys {
		if x == k {
			return true
		}
	}
	return false
}

// parseSeq consumes terms until EOF or an unconsumed "}", applying the
// flush/hold algebra described in parser.go's doc comment. mark is the
// keysNotUp index below which keys belong to an enclosing held scope
// and must not be touched by this scope's boundary/release logic.
// depth counts brace nesting from the top of the expression; it's used
// only to reject "$(...)" inside a group (depth>0).
func (p *parser) parseSeq(mark, depth int) error {
	var pending []keycode.Key
	for {
		tok := p.peek()
		switch tok.kind {
		case tokEOF, tokCloseBrace:
			if tok.kind == tokCloseBrace && !p.isInput && len(pending) == 0 {
				// On the output side, keys still held when a "{...}"
				// scope closes are released in reverse press order:
				// "A{(B C)}" -> "+A +B +C -C -B -A".
				for i := len(p.keysNotUp) - 1; i >= mark; i-- {
					p.emit(p.keysNotUp[i], Up)
				}
				p.keysNotUp = p.keysNotUp[:mark]
				return nil
			}
			p.boundary(pending, mark)
			p.boundary(nil, mark)
			return nil

		case tokCloseParen:
			return &SyntaxError{Msg: "unmatched ')'"}

		case tokAction:
			if p.isInput {
				return &SyntaxError{Msg: "terminal action not allowed in an input pattern"}
			}
			if depth > 0 {
				return &SyntaxError{Msg: "terminal action not allowed inside a group"}
			}
			if p.actions == nil {
				return &SyntaxError{Msg: "terminal action not permitted in this expression"}
			}
			p.boundary(pending, mark)
			pending = nil
			idx := p.actions.Add(tok.action)
			p.emit(ActionKey(idx), Down)
			p.advance()

		case tokAtom:
			if tok.not {
				p.boundary(pending, mark)
				pending = nil
				key, err := p.resolve(tok.name)
				if err != nil {
					return err
				}
				p.emit(key, Not)
				p.advance()
				continue
			}
			if tok.explicit {
				p.boundary(pending, mark)
				pending = nil
				key, err := p.resolve(tok.name)
				if err != nil {
					return err
				}
				p.emit(key, tok.state)
				switch tok.state {
				case Down, DownAsync:
					if !containsKey(p.keysNotUp, key) {
						p.keysNotUp = append(p.keysNotUp, key)
					}
				case Up, UpAsync:
					p.removeLive(key)
				}
				p.advance()
				continue
			}
			p.boundary(pending, mark)
			pending = nil
			key, err := p.resolve(tok.name)
			if err != nil {
				return err
			}
			p.advance()
			if p.peek().kind == tokOpenBrace {
				if err := p.parseHeldScope([]keycode.Key{key}, mark, depth); err != nil {
					return err
				}
				continue
			}
			pending = append(pending, key)

		case tokOpenParen:
			p.boundary(pending, mark)
			pending = nil
			p.advance()
			groupKeys, err := p.parseGroup()
			if err != nil {
				return err
			}
			if err := p.closeGroup(groupKeys, mark); err != nil {
				return err
			}
			if p.peek().kind == tokOpenBrace {
				if err := p.enterHeldScope(mark, depth); err != nil {
					return err
				}
				continue
			}

		case tokOpenBrace:
			return &SyntaxError{Msg: "'{' must follow a key or group"}
		}
	}
}

// parseHeldScope implements "X{Y}" where X is a single bare atom not
// yet pressed by anything else: press X as a hold, recurse into Y,
// then release X when the matching "}" is reached.
func (p *parser) parseHeldScope(holdKeys []keycode.Key, mark, depth int) error {
	p.pressHold(holdKeys)
	p.advance() // consume "{"
	newMark := len(p.keysNotUp)
	if err := p.parseSeq(newMark, depth+1); err != nil {
		return err
	}
	if p.peek().kind != tokCloseBrace {
		return &SyntaxError{Msg: "unterminated '{'"}
	}
	p.advance() // consume "}"
	p.releaseHold(holdKeys, newMark-len(holdKeys))
	return nil
}

// enterHeldScope implements "(X Y){Z}": the group's keys are already
// pressed (closeGroup ran already), so only the recursion and the
// trailing release are left to do.
func (p *parser) enterHeldScope(mark, depth int) error {
	holdStart := mark
	// the group's keys occupy keysNotUp[mark:] at this point, since
	// closeGroup just ran with this same mark.
	holdKeys := append([]keycode.Key(nil), p.keysNotUp[mark:]...)
	p.advance() // consume "{"
	newMark := len(p.keysNotUp)
	if err := p.parseSeq(newMark, depth+1); err != nil {
		return err
	}
	if p.peek().kind != tokCloseBrace {
		return &SyntaxError{Msg: "unterminated '{'"}
	}
	p.advance() // consume "}"
	p.releaseHold(holdKeys, holdStart)
	return nil
}

// parseGroup scans a flat "(...)" atom list. Nested parens are
// flattened into the enclosing group's key list; a brace-held sub-term
// inside a group is rejected.
func (p *parser) parseGroup() ([]keycode.Key, error) {
	var keys []keycode.Key
	for {
		tok := p.peek()
		switch tok.kind {
		case tokCloseParen:
			p.advance()
			return keys, nil
		case tokOpenParen:
			p.advance()
			inner, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			keys = append(keys, inner...)
		case tokAtom:
			key, err := p.resolve(tok.name)
			if err != nil {
				return nil, err
			}
			p.advance()
			if tok.not {
				p.emit(key, Not)
				continue
			}
			if tok.explicit {
				p.emit(key, tok.state)
				continue
			}
			if p.peek().kind == tokOpenBrace {
				return nil, &SyntaxError{Msg: "'{' directly inside a simultaneous group is not supported"}
			}
			keys = append(keys, key)
		case tokAction:
			return nil, &SyntaxError{Msg: "terminal action not allowed inside a group"}
		case tokOpenBrace:
			return nil, &SyntaxError{Msg: "'{' directly inside a simultaneous group is not supported"}
		case tokEOF, tokCloseBrace:
			return nil, &SyntaxError{Msg: "unterminated '('"}
		}
	}
}

// closeGroup presses a parenthesized group's keys simultaneously: on
// the input side, async-press then synchronize (*K +K); on output,
// just +K. Keys already live in an enclosing scope that aren't part of
// the group are released, matching "A(B C)" -> "+A ~A *B *C +B +C ~B ~C".
func (p *parser) closeGroup(groupKeys []keycode.Key, mark int) error {
	rel := p.releaseState()
	scope := p.keysNotUp[mark:]
	kept := scope[:0:0]
	for _, k := range scope {
		if containsKey(groupKeys, k) {
			kept = append(kept, k)
		} else {
			p.emit(k, rel)
		}
	}
	p.keysNotUp = append(p.keysNotUp[:mark], kept...)

	if p.isInput {
		for _, k := range groupKeys {
			p.emit(k, DownAsync)
		}
	}
	for _, k := range groupKeys {
		p.emit(k, Down)
	}
	for _, k := range groupKeys {
		if !containsKey(p.keysNotUp[mark:], k) {
			p.keysNotUp = append(p.keysNotUp, k)
		}
	}
	return nil
}

func (p *parser) removeLive(k keycode.Key) {
	for i, x := range p.keysNotUp {
		if x == k {
			p.keysNotUp = append(p.keysNotUp[:i], p.keysNotUp[i+1:]...)
			return
		}
	}
}
