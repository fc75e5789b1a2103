package keymap

import (
	"fmt"
	"strings"

	"github.com/Jai-JAP/keymapper/internal/keycode"
	"github.com/Jai-JAP/keymapper/internal/keyseq"
)

type logicalOccurrence struct {
	start, end int // span to replace; includes a leading "!" when negated
	negated    bool
	members    []string
}

// findLogicalOccurrences locates every reference to a known logical
// key inside text. A bare reference ("Shift") is an expansion choice
// point; a negated reference ("!Shift") is not a choice — it expands
// to "!M1 !M2 …" for all members at once, mirroring how the original
// source splits a negated logical key into one negated atom per
// member (a held key is only "not down" once every alias of it is).
func findLogicalOccurrences(text string, logical map[string][]string) []logicalOccurrence {
	var occs []logicalOccurrence
	scanIdentifiers(text, func(name string, start, end int) {
		members, ok := logical[name]
		if !ok {
			return
		}
		s := start
		negated := false
		if s > 0 && text[s-1] == '!' {
			negated = true
			s--
		}
		occs = append(occs, logicalOccurrence{start: s, end: end, negated: negated, members: members})
	})
	return occs
}

// cartesianCombos returns every index combination across counts, the
// first dimension varying slowest (it is the leftmost/most
// significant digit), so expansion order is deterministic and matches
// the declared member order of the leftmost logical-key occurrence.
func cartesianCombos(counts []int) [][]int {
	if len(counts) == 0 {
		return [][]int{{}}
	}
	rest := cartesianCombos(counts[1:])
	out := make([][]int, 0, counts[0]*len(rest))
	for i := 0; i < counts[0]; i++ {
		for _, r := range rest {
			combo := make([]int, 0, len(r)+1)
			combo = append(combo, i)
			combo = append(combo, r...)
			out = append(out, combo)
		}
	}
	return out
}

// expandLogicalText produces every concrete text variant of text by
// substituting each distinct logical-key occurrence with one of its
// members, independently per occurrence (spec §4.E: Cartesian product
// across distinct occurrences). A negated occurrence is not a choice
// point and always expands the same way, to all of its members
// negated. Returns []string{text} unchanged if text references no
// logical key.
func expandLogicalText(text string, logical map[string][]string) []string {
	occs := findLogicalOccurrences(text, logical)
	if len(occs) == 0 {
		return []string{text}
	}
	counts := make([]int, len(occs))
	for i, o := range occs {
		if o.negated {
			counts[i] = 1
		} else {
			counts[i] = len(o.members)
		}
	}
	combos := cartesianCombos(counts)
	variants := make([]string, 0, len(combos))
	for _, combo := range combos {
		var b strings.Builder
		prev := 0
		for i, o := range occs {
			b.WriteString(text[prev:o.start])
			if o.negated {
				parts := make([]string, len(o.members))
				for j, m := range o.members {
					parts[j] = "!" + m
				}
				b.WriteString(strings.Join(parts, " "))
			} else {
				b.WriteString(o.members[combo[i]])
			}
			prev = o.end
		}
		b.WriteString(text[prev:])
		variants = append(variants, b.String())
	}
	return variants
}

func (p *parser) expandAndParseInput(text string) ([]keyseq.KeySequence, error) {
	variants := expandLogicalText(text, p.logical)
	seqs := make([]keyseq.KeySequence, 0, len(variants))
	for _, v := range variants {
		seq, err := keyseq.Parse(v, true, nil)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

func (p *parser) expandAndParseOutput(text string) ([]keyseq.KeySequence, error) {
	variants := expandLogicalText(text, p.logical)
	seqs := make([]keyseq.KeySequence, 0, len(variants))
	for _, v := range variants {
		seq, err := keyseq.Parse(v, false, p.cfg)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}

// applyModifiers wraps a single already-lowered input sequence with
// the current context's modifier prefix/suffix events (spec §4.D
// "Modifier contexts"). When the modifier list references a logical
// key it multiplies out Cartesian-style on top of seq, independent of
// whatever expansion already produced seq (Open Question: resolved as
// Cartesian, not zip, since the modifier and the input pattern are
// unrelated occurrences).
func (p *parser) applyModifiers(ctx *Context, seq keyseq.KeySequence) ([]keyseq.KeySequence, error) {
	if len(ctx.Modifiers) == 0 {
		return []keyseq.KeySequence{seq}, nil
	}
	type dim struct {
		negated bool
		members []string
	}
	dims := make([]dim, len(ctx.Modifiers))
	for i, m := range ctx.Modifiers {
		members, ok := p.logical[m.Name]
		if !ok {
			if _, ok2 := keycode.ByName(m.Name); ok2 {
				members = []string{m.Name}
			} else {
				return nil, fmt.Errorf("modifier %q is neither a logical key nor a key", m.Name)
			}
		}
		dims[i] = dim{negated: m.Not, members: members}
	}
	counts := make([]int, len(dims))
	for i, d := range dims {
		if d.negated {
			counts[i] = 1
		} else {
			counts[i] = len(d.members)
		}
	}
	var out []keyseq.KeySequence
	for _, combo := range cartesianCombos(counts) {
		var prefix, tail keyseq.KeySequence
		for i, d := range dims {
			if d.negated {
				for _, mem := range d.members {
					k, ok := keycode.ByName(mem)
					if !ok {
						return nil, fmt.Errorf("modifier member %q is not a known key", mem)
					}
					prefix = append(prefix, keyseq.KeyEvent{Key: k, State: keyseq.Not})
				}
				continue
			}
			name := d.members[combo[i]]
			k, ok := keycode.ByName(name)
			if !ok {
				return nil, fmt.Errorf("modifier member %q is not a known key", name)
			}
			prefix = append(prefix, keyseq.KeyEvent{Key: k, State: keyseq.Down})
			tail = append(tail, keyseq.KeyEvent{Key: k, State: keyseq.UpAsync})
		}
		reversed := make(keyseq.KeySequence, len(tail))
		for i, ev := range tail {
			reversed[len(tail)-1-i] = ev
		}
		final := make(keyseq.KeySequence, 0, len(prefix)+len(seq)+len(reversed))
		final = append(final, prefix...)
		final = append(final, seq...)
		final = append(final, reversed...)
		out = append(out, final)
	}
	return out, nil
}
