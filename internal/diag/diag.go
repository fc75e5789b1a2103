// Package diag renders parse results and errors for the CLI: styled
// success/warning/error text, a syntax-highlighted dump of a config
// file, and a clipboard copy helper for keymapper format --copy. None
// of this is part of the core module (spec.md puts the outer CLI shell
// out of scope); it is the ambient rendering layer the CLI wraps around
// the core the way the teacher's TUI wraps lipgloss around its own
// domain types.
package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/Jai-JAP/keymapper/internal/keymap"
)

var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleSubtle  = lipgloss.NewStyle().Foreground(colorGray)
)

// UseColor reports whether w looks like a terminal that should receive
// ANSI styling rather than plain text; used to decide between styled
// and bare output for the same message.
func UseColor(w *os.File) bool {
	return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
}

// Success renders msg in the success style if out is a terminal.
func Success(out *os.File, msg string) string {
	if !UseColor(out) {
		return msg
	}
	return styleSuccess.Render(msg)
}

// Error renders msg in the error style if out is a terminal.
func Error(out *os.File, msg string) string {
	if !UseColor(out) {
		return msg
	}
	return styleError.Render(msg)
}

// Warning renders msg in the warning style if out is a terminal.
func Warning(out *os.File, msg string) string {
	if !UseColor(out) {
		return msg
	}
	return styleWarning.Render(msg)
}

// Title renders msg in the title style if out is a terminal.
func Title(out *os.File, msg string) string {
	if !UseColor(out) {
		return msg
	}
	return styleTitle.Render(msg)
}

// Subtle renders msg in the subtle style if out is a terminal.
func Subtle(out *os.File, msg string) string {
	if !UseColor(out) {
		return msg
	}
	return styleSubtle.Render(msg)
}

// HighlightConfig writes src to w, syntax-highlighted for a terminal.
// If out is not a terminal, src is written verbatim.
func HighlightConfig(w io.Writer, out *os.File, src string) error {
	if !UseColor(out) {
		_, err := io.WriteString(w, src)
		return err
	}
	iterator, err := configLexer.Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("tokenising config for highlighting: %w", err)
	}
	style := styles.Get("monokai")
	if err := formatters.TTY256.Format(w, style, iterator); err != nil {
		return fmt.Errorf("formatting highlighted config: %w", err)
	}
	return nil
}

// RenderParseError renders a *keymap.ParseError with the offending
// source line shown underneath for context, the way a compiler points
// at a column. lines is the config's source split on "\n"; if the
// error's line number falls outside lines, only the message is shown.
func RenderParseError(out *os.File, err *keymap.ParseError, lines []string) string {
	var b strings.Builder
	b.WriteString(Error(out, fmt.Sprintf("error: %s", err.Error())))
	if err.Line >= 1 && err.Line <= len(lines) {
		b.WriteString("\n  ")
		b.WriteString(Subtle(out, fmt.Sprintf("%d | ", err.Line)))
		b.WriteString(lines[err.Line-1])
	}
	return b.String()
}

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
