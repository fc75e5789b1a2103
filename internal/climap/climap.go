// Package climap holds the command bodies behind cmd/keymapper: one
// RunOptions struct and one Run-shaped entry point per subcommand,
// mirroring the teacher's internal/cli.RunOptions/Run(opts) split so
// cmd/keymapper's cobra RunE callbacks stay thin.
package climap

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/Jai-JAP/keymapper/internal/diag"
	"github.com/Jai-JAP/keymapper/internal/export"
	"github.com/Jai-JAP/keymapper/internal/keymap"
	"github.com/Jai-JAP/keymapper/internal/keyseq"
)

// actionList is a throwaway keyseq.ActionSink for the "format" command,
// which parses one isolated sequence fragment with no Config around it
// to own a real action table.
type actionList []string

func (a *actionList) Add(shellText string) int {
	*a = append(*a, shellText)
	return len(*a) - 1
}

// CheckOptions configures the "check" subcommand.
type CheckOptions struct {
	FilePath string
}

// Check parses FilePath and reports success or the *keymap.ParseError
// with the offending line shown for context.
func Check(opts CheckOptions) error {
	src, err := os.ReadFile(opts.FilePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", opts.FilePath, err)
	}

	cfg, err := keymap.ParseFiles([]string{opts.FilePath})
	if err != nil {
		if perr, ok := err.(*keymap.ParseError); ok {
			fmt.Fprintln(os.Stderr, diag.RenderParseError(os.Stderr, perr, strings.Split(string(src), "\n")))
			os.Exit(1)
		}
		return fmt.Errorf("checking %s: %w", opts.FilePath, err)
	}

	fmt.Fprintln(os.Stdout, diag.Success(os.Stdout, fmt.Sprintf(
		"%s is valid: %d context(s), %d action(s)", opts.FilePath, len(cfg.Contexts), len(cfg.Actions))))
	return nil
}

// DumpOptions configures the "dump" subcommand.
type DumpOptions struct {
	FilePath string
	Format   string // "text" (default), "yaml", "json"
}

// Dump parses FilePath and prints the canonical Config in the
// requested format.
func Dump(opts DumpOptions) error {
	cfg, err := keymap.ParseFiles([]string{opts.FilePath})
	if err != nil {
		return fmt.Errorf("parsing %s: %w", opts.FilePath, err)
	}
	return dumpConfig(os.Stdout, cfg, opts.Format)
}

func dumpConfig(w *os.File, cfg *keymap.Config, format string) error {
	switch format {
	case "yaml":
		out, err := export.YAML(cfg)
		if err != nil {
			return fmt.Errorf("rendering yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "json":
		out, err := export.JSON(cfg)
		if err != nil {
			return fmt.Errorf("rendering json: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "", "text":
		printText(w, cfg)
		return nil
	default:
		return fmt.Errorf("unknown dump format %q (want text, yaml, or json)", format)
	}
}

func printText(w *os.File, cfg *keymap.Config) {
	for i, a := range cfg.Actions {
		fmt.Fprintln(w, diag.Subtle(w, fmt.Sprintf("Action%d: $(%s)", i, a.ShellText)))
	}
	for ci, ctx := range cfg.Contexts {
		header := fmt.Sprintf("context %d", ci)
		if ctx.Default {
			header = "context (default)"
		}
		fmt.Fprintln(w, diag.Title(w, header))
		for _, in := range ctx.Inputs {
			left := keyseq.Format(in.Seq)
			if in.IsCommand() {
				fmt.Fprintf(w, "  %s >> %s\n", left, in.Command)
				continue
			}
			fmt.Fprintf(w, "  %s >> %s\n", left, keyseq.Format(ctx.Outputs[in.OutputIndex]))
		}
		for name, seq := range ctx.CommandOutputs {
			fmt.Fprintf(w, "  %s >> %s\n", name, keyseq.Format(seq))
		}
	}
}

// FormatOptions configures the "format" subcommand.
type FormatOptions struct {
	Expr    string
	IsInput bool
	Copy    bool
}

// Format parses a single key-sequence fragment and prints its
// canonical formatted form, optionally copying it to the clipboard.
func Format(opts FormatOptions) error {
	var actions actionList
	seq, err := keyseq.Parse(opts.Expr, opts.IsInput, &actions)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", opts.Expr, err)
	}
	formatted := keyseq.Format(seq)
	fmt.Fprintln(os.Stdout, formatted)
	if opts.Copy {
		if err := diag.CopyToClipboard(formatted); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, diag.Subtle(os.Stderr, "copied to clipboard"))
	}
	return nil
}

// WatchOptions configures the "watch" subcommand.
type WatchOptions struct {
	FilePath string
	Format   string
}

// Watch watches FilePath and reprints the dump every time it changes,
// until interrupted. Grounded on the teacher's cli.Run Ctrl+C handling
// (os/signal.Notify on os.Interrupt).
func Watch(opts WatchOptions) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	w, err := keymap.Watch([]string{opts.FilePath}, func(cfg *keymap.Config, err error) {
		if err != nil {
			if perr, ok := err.(*keymap.ParseError); ok {
				src, readErr := os.ReadFile(opts.FilePath)
				if readErr == nil {
					fmt.Fprintln(os.Stderr, diag.RenderParseError(os.Stderr, perr, strings.Split(string(src), "\n")))
					return
				}
			}
			fmt.Fprintln(os.Stderr, diag.Error(os.Stderr, err.Error()))
			return
		}
		fmt.Fprintln(os.Stdout, diag.Subtle(os.Stdout, fmt.Sprintf("--- %s reloaded ---", opts.FilePath)))
		if err := dumpConfig(os.Stdout, cfg, opts.Format); err != nil {
			fmt.Fprintln(os.Stderr, diag.Error(os.Stderr, err.Error()))
		}
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", opts.FilePath, err)
	}
	defer w.Close()

	<-sigChan
	fmt.Fprintln(os.Stderr, "\nwatch stopped")
	return nil
}
