// Package export renders a parsed *keymap.Config as YAML or JSON, for
// the "dump" CLI command and for anything that wants a machine-readable
// snapshot of a configuration outside this module.
package export

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Jai-JAP/keymapper/internal/keymap"
	"github.com/Jai-JAP/keymapper/internal/keyseq"
)

// Doc is the serializable shape of a keymap.Config: plain strings and
// slices only, so it round-trips cleanly through both yaml.v3 and
// encoding/json without custom (Un)MarshalYAML methods on the domain
// types themselves.
type Doc struct {
	Actions  []string  `yaml:"actions" json:"actions"`
	Contexts []Context `yaml:"contexts" json:"contexts"`
}

type Context struct {
	Default        bool              `yaml:"default,omitempty" json:"default,omitempty"`
	System         string            `yaml:"system,omitempty" json:"system,omitempty"`
	Class          *FilterDoc        `yaml:"class,omitempty" json:"class,omitempty"`
	Title          *FilterDoc        `yaml:"title,omitempty" json:"title,omitempty"`
	Modifiers      []string          `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Inputs         []Input           `yaml:"inputs" json:"inputs"`
	Outputs        []string          `yaml:"outputs" json:"outputs"`
	CommandOutputs map[string]string `yaml:"command_outputs,omitempty" json:"command_outputs,omitempty"`
}

type FilterDoc struct {
	Kind    string `yaml:"kind" json:"kind"`
	Pattern string `yaml:"pattern" json:"pattern"`
}

type Input struct {
	Seq         string `yaml:"seq" json:"seq"`
	OutputIndex int    `yaml:"output_index,omitempty" json:"output_index,omitempty"`
	Command     string `yaml:"command,omitempty" json:"command,omitempty"`
}

func filterKindString(k keymap.FilterKind) string {
	switch k {
	case keymap.FilterExact:
		return "exact"
	case keymap.FilterSubstring:
		return "substring"
	case keymap.FilterRegex:
		return "regex"
	default:
		return "unknown"
	}
}

func filterDoc(f keymap.Filter) *FilterDoc {
	if f.Pattern == "" && f.Kind == keymap.FilterExact {
		return nil
	}
	return &FilterDoc{Kind: filterKindString(f.Kind), Pattern: f.Pattern}
}

func modifierStrings(terms []keymap.ModifierTerm) []string {
	if len(terms) == 0 {
		return nil
	}
	out := make([]string, len(terms))
	for i, t := range terms {
		if t.Not {
			out[i] = "!" + t.Name
		} else {
			out[i] = t.Name
		}
	}
	return out
}

// ToDoc converts a parsed Config into its serializable form.
func ToDoc(cfg *keymap.Config) Doc {
	doc := Doc{Actions: make([]string, len(cfg.Actions))}
	for i, a := range cfg.Actions {
		doc.Actions[i] = a.ShellText
	}
	for _, ctx := range cfg.Contexts {
		cd := Context{
			Default:   ctx.Default,
			System:    ctx.System,
			Class:     filterDoc(ctx.Class),
			Title:     filterDoc(ctx.Title),
			Modifiers: modifierStrings(ctx.Modifiers),
			Outputs:   make([]string, len(ctx.Outputs)),
		}
		for i, out := range ctx.Outputs {
			cd.Outputs[i] = keyseq.Format(out)
		}
		for _, in := range ctx.Inputs {
			cd.Inputs = append(cd.Inputs, Input{
				Seq:         keyseq.Format(in.Seq),
				OutputIndex: in.OutputIndex,
				Command:     in.Command,
			})
		}
		if len(ctx.CommandOutputs) > 0 {
			cd.CommandOutputs = make(map[string]string, len(ctx.CommandOutputs))
			for name, seq := range ctx.CommandOutputs {
				cd.CommandOutputs[name] = keyseq.Format(seq)
			}
		}
		doc.Contexts = append(doc.Contexts, cd)
	}
	return doc
}

// YAML renders cfg as YAML.
func YAML(cfg *keymap.Config) ([]byte, error) {
	return yaml.Marshal(ToDoc(cfg))
}

// JSON renders cfg as indented JSON.
func JSON(cfg *keymap.Config) ([]byte, error) {
	b, err := json.MarshalIndent(ToDoc(cfg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return b, nil
}
