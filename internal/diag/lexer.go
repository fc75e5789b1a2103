package diag

import (
	"github.com/alecthomas/chroma/v2"
)

// configLexer is a minimal chroma lexer for the keymapper configuration
// language: context headers, macro/logical-key assignments, mappings,
// and the $(...) shell escape. No chroma lexer in the ecosystem already
// knows this surface syntax, so it is defined here the way chroma's own
// bundled lexers are (a Config plus a "root" rule set).
var configLexer = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "keymapper-config",
		Aliases:   []string{"keymapper"},
		Filenames: []string{"*.conf"},
		MimeTypes: []string{"text/x-keymapper-config"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `[#;].*\n?`, Type: chroma.Comment, Mutator: nil},
				{Pattern: `\[`, Type: chroma.Punctuation, Mutator: chroma.Push("context")},
				{Pattern: `\$\(`, Type: chroma.Punctuation, Mutator: chroma.Push("shell")},
				{Pattern: `>>`, Type: chroma.Operator, Mutator: nil},
				{Pattern: `=`, Type: chroma.Operator, Mutator: nil},
				{Pattern: `[!+~*]`, Type: chroma.Operator, Mutator: nil},
				{Pattern: `[(){}|]`, Type: chroma.Punctuation, Mutator: nil},
				{Pattern: `"[^"]*"`, Type: chroma.LiteralString, Mutator: nil},
				{Pattern: `/[^/\n]*/i?`, Type: chroma.LiteralStringRegex, Mutator: nil},
				{Pattern: `\s+`, Type: chroma.Text, Mutator: nil},
				{Pattern: `[A-Za-z_][A-Za-z0-9_]*`, Type: chroma.NameVariable, Mutator: nil},
				{Pattern: `.`, Type: chroma.Text, Mutator: nil},
			},
			"context": {
				{Pattern: `\]`, Type: chroma.Punctuation, Mutator: chroma.Pop(1)},
				{Pattern: `[a-zA-Z]+`, Type: chroma.NameAttribute, Mutator: nil},
				{Pattern: `=`, Type: chroma.Operator, Mutator: nil},
				{Pattern: `"[^"]*"`, Type: chroma.LiteralString, Mutator: nil},
				{Pattern: `/[^/\n]*/i?`, Type: chroma.LiteralStringRegex, Mutator: nil},
				{Pattern: `\s+`, Type: chroma.Text, Mutator: nil},
			},
			"shell": {
				{Pattern: `\)`, Type: chroma.Punctuation, Mutator: chroma.Pop(1)},
				{Pattern: `[^)]+`, Type: chroma.LiteralStringDoc, Mutator: nil},
			},
		}
	},
)
