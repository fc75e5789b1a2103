package keyseq

import (
	"fmt"
	"strings"
)

type tokenKind uint8

const (
	tokAtom tokenKind = iota
	tokOpenParen
	tokCloseParen
	tokOpenBrace
	tokCloseBrace
	tokAction
	tokEOF
)

type token struct {
	kind     tokenKind
	name     string // identifier, for tokAtom
	not      bool   // "!" prefix, for tokAtom
	explicit bool   // raw state prefix ("+","-","~","*") was given
	state    KeyState
	action   string // shell text, for tokAction
}

func isIdentChar(r byte) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_'
}

// lex tokenizes a single input or output expression. Whitespace is a
// pure separator: adjacency between an atom/group and the next token
// carries the same meaning whether or not whitespace appears between
// them, so the lexer drops it rather than emitting a token for it.
func lex(expr string) ([]token, error) {
	var toks []token
	i := 0
	n := len(expr)
	for i < n {
		c := expr[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '(':
			toks = append(toks, token{kind: tokOpenParen})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokCloseParen})
			i++
		case c == '{':
			toks = append(toks, token{kind: tokOpenBrace})
			i++
		case c == '}':
			toks = append(toks, token{kind: tokCloseBrace})
			i++
		case c == '$':
			if i+1 >= n || expr[i+1] != '(' {
				return nil, &SyntaxError{Msg: fmt.Sprintf("stray '$' at position %d", i)}
			}
			text, next, err := scanBalancedParen(expr, i+1)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokAction, action: text})
			i = next
		case c == '!':
			name, next, err := scanIdent(expr, i+1)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokAtom, name: name, not: true})
			i = next
		case c == '+' || c == '-' || c == '~' || c == '*':
			name, next, err := scanIdent(expr, i+1)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokAtom, name: name, explicit: true, state: rawState(c)})
			i = next
		case isIdentChar(c):
			name, next, err := scanIdent(expr, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokAtom, name: name})
			i = next
		default:
			return nil, &SyntaxError{Msg: fmt.Sprintf("unexpected character %q at position %d", c, i)}
		}
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

func rawState(c byte) KeyState {
	switch c {
	case '+':
		return Down
	case '-':
		return Up
	case '~':
		return UpAsync
	case '*':
		return DownAsync
	default:
		panic("keyseq: unreachable raw state prefix")
	}
}

func scanIdent(s string, start int) (string, int, error) {
	i := start
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	if i == start {
		return "", 0, &SyntaxError{Msg: fmt.Sprintf("expected key name at position %d", start)}
	}
	return s[start:i], i, nil
}

// scanBalancedParen scans "(...)" starting at the opening paren index,
// returning the inner text and the index just past the closing paren.
// Nested parens balance; quoted strings inside are not special-cased,
// so a ")" inside quotes still counts (unlike configlex's tokenizer,
// which tracks quotes inside "$(" … ")").
func scanBalancedParen(s string, openIdx int) (string, int, error) {
	depth := 0
	i := openIdx
	for i < len(s) {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return s[openIdx+1 : i], i + 1, nil
			}
		}
		i++
	}
	return "", 0, &SyntaxError{Msg: "unterminated \"$(\" shell block"}
}

// describeTokens renders a token slice back to roughly the surface
// text it came from, used only in error messages.
func describeTokens(toks []token) string {
	var b strings.Builder
	for _, t := range toks {
		if t.kind == tokEOF {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch t.kind {
		case tokOpenParen:
			b.WriteByte('(')
		case tokCloseParen:
			b.WriteByte(')')
		case tokOpenBrace:
			b.WriteByte('{')
		case tokCloseBrace:
			b.WriteByte('}')
		case tokAction:
			fmt.Fprintf(&b, "$(%s)", t.action)
		case tokAtom:
			if t.not {
				b.WriteByte('!')
			}
			b.WriteString(t.name)
		}
	}
	return b.String()
}
