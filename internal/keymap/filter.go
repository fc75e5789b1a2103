package keymap

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// Match reports whether s satisfies the filter. An empty Pattern
// matches unconditionally (spec §4.D: "An empty filter value matches
// any"), and Exact/Substring comparisons are Unicode case-folded —
// window class/title matching is conventionally case-insensitive.
func (f Filter) Match(s string) (bool, error) {
	if f.Kind != FilterRegex && f.Pattern == "" {
		return true, nil
	}
	switch f.Kind {
	case FilterExact:
		return foldCaser.String(s) == foldCaser.String(f.Pattern), nil
	case FilterSubstring:
		return strings.Contains(foldCaser.String(s), foldCaser.String(f.Pattern)), nil
	case FilterRegex:
		opts := regexp2.None
		if f.CaseInsensitive {
			opts = regexp2.IgnoreCase
		}
		re, err := regexp2.Compile(f.Pattern, opts)
		if err != nil {
			return false, fmt.Errorf("invalid regex %q: %w", f.Pattern, err)
		}
		ok, err := re.MatchString(s)
		if err != nil {
			return false, err
		}
		return ok, nil
	default:
		return false, fmt.Errorf("unknown filter kind %d", f.Kind)
	}
}

// contextSpec is the parsed, not-yet-applied content of a "[k=v …]"
// header line.
type contextSpec struct {
	Default   bool
	System    string
	Class     *Filter
	Title     *Filter
	Modifiers []ModifierTerm
}

// parseContextHeader parses one "[filter filter …]" line per the
// grammar in spec.md §6 (filter = "default" | ident "=" (string | regex)).
func parseContextHeader(text string) (*contextSpec, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "[") || !strings.HasSuffix(text, "]") || len(text) < 2 {
		return nil, fmt.Errorf("invalid context header %q", text)
	}
	inner := text[1 : len(text)-1]
	tokens, err := splitFilterTokens(inner)
	if err != nil {
		return nil, err
	}
	spec := &contextSpec{}
	for _, tok := range tokens {
		if tok == "default" {
			spec.Default = true
			continue
		}
		key, rawVal, ok := strings.Cut(tok, "=")
		if !ok {
			return nil, fmt.Errorf("invalid context header filter %q", tok)
		}
		key = strings.TrimSpace(key)
		switch key {
		case "system":
			lit, isRegex, _, err := parseFilterValue(rawVal)
			if err != nil {
				return nil, err
			}
			if isRegex {
				return nil, fmt.Errorf("system filter must be a quoted string, not a regex")
			}
			if lit != "Linux" && lit != "Windows" && lit != "MacOS" {
				return nil, fmt.Errorf("unrecognized system filter %q", lit)
			}
			spec.System = lit
		case "class":
			lit, isRegex, ci, err := parseFilterValue(rawVal)
			if err != nil {
				return nil, err
			}
			kind := FilterExact
			if isRegex {
				kind = FilterRegex
			}
			spec.Class = &Filter{Kind: kind, Pattern: lit, CaseInsensitive: ci}
		case "title":
			lit, isRegex, ci, err := parseFilterValue(rawVal)
			if err != nil {
				return nil, err
			}
			kind := FilterSubstring
			if isRegex {
				kind = FilterRegex
			}
			spec.Title = &Filter{Kind: kind, Pattern: lit, CaseInsensitive: ci}
		case "modifier":
			lit, isRegex, _, err := parseFilterValue(rawVal)
			if err != nil {
				return nil, err
			}
			if isRegex {
				return nil, fmt.Errorf("modifier filter must be a quoted string, not a regex")
			}
			spec.Modifiers, err = parseModifierList(lit)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown context filter key %q", key)
		}
	}
	return spec, nil
}

// splitFilterTokens splits a context header's inner text on
// whitespace, keeping quoted/regex values intact.
func splitFilterTokens(inner string) ([]string, error) {
	var tokens []string
	var b strings.Builder
	var inDouble, inSingle, inRegex bool
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case inDouble:
			b.WriteByte(c)
			if c == '"' {
				inDouble = false
			}
		case inSingle:
			b.WriteByte(c)
			if c == '\'' {
				inSingle = false
			}
		case inRegex:
			b.WriteByte(c)
			if c == '/' {
				inRegex = false
			}
		case c == '"':
			inDouble = true
			b.WriteByte(c)
		case c == '\'':
			inSingle = true
			b.WriteByte(c)
		case c == '/':
			inRegex = true
			b.WriteByte(c)
		case c == ' ' || c == '\t':
			if b.Len() > 0 {
				tokens = append(tokens, b.String())
				b.Reset()
			}
		default:
			b.WriteByte(c)
		}
	}
	if inDouble || inSingle || inRegex {
		return nil, fmt.Errorf("unterminated quote or regex in context header")
	}
	if b.Len() > 0 {
		tokens = append(tokens, b.String())
	}
	return tokens, nil
}

// parseFilterValue parses a quoted string or a /regex/[i] value,
// returning the literal text, whether it was a regex, and whether the
// "i" flag was present.
func parseFilterValue(raw string) (literal string, isRegex bool, caseInsensitive bool, err error) {
	if len(raw) >= 2 && (raw[0] == '"' && raw[len(raw)-1] == '"' || raw[0] == '\'' && raw[len(raw)-1] == '\'') {
		inner := raw[1 : len(raw)-1]
		inner = strings.ReplaceAll(inner, `\"`, `"`)
		inner = strings.ReplaceAll(inner, `\'`, `'`)
		return inner, false, false, nil
	}
	if len(raw) >= 2 && raw[0] == '/' {
		end := strings.LastIndexByte(raw, '/')
		if end <= 0 {
			return "", false, false, fmt.Errorf("malformed regex filter value %q", raw)
		}
		pattern := raw[1:end]
		flags := raw[end+1:]
		if flags != "" && flags != "i" {
			return "", false, false, fmt.Errorf("unsupported regex flags %q", flags)
		}
		return pattern, true, flags == "i", nil
	}
	return "", false, false, fmt.Errorf("malformed filter value %q, expected a quoted string or /regex/", raw)
}

// parseModifierList parses a modifier filter's "M1 !M2" value.
func parseModifierList(s string) ([]ModifierTerm, error) {
	var terms []ModifierTerm
	for _, field := range strings.Fields(s) {
		if field == "" {
			continue
		}
		if strings.HasPrefix(field, "!") {
			terms = append(terms, ModifierTerm{Name: field[1:], Not: true})
		} else {
			terms = append(terms, ModifierTerm{Name: field, Not: false})
		}
	}
	return terms, nil
}
