package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Jai-JAP/keymapper/internal/climap"
	"github.com/Jai-JAP/keymapper/internal/config"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "keymapper",
	Short:   "keymapper - a keyboard remapper configuration toolkit",
	Version: version,
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse a configuration file and report any error",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath, err := resolvePath(args)
		if err != nil {
			return err
		}
		return climap.Check(climap.CheckOptions{FilePath: filePath})
	},
}

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Parse a configuration file and print the canonical catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath, err := resolvePath(args)
		if err != nil {
			return err
		}
		return climap.Dump(climap.DumpOptions{FilePath: filePath, Format: dumpFormat})
	},
}

var formatCmd = &cobra.Command{
	Use:   "format <expr>",
	Short: "Parse a key-sequence fragment and print its canonical formatted form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return climap.Format(climap.FormatOptions{
			Expr:    args[0],
			IsInput: !formatOutput,
			Copy:    formatCopy,
		})
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a configuration file and reprint the dump on every change",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath, err := resolvePath(args)
		if err != nil {
			return err
		}
		return climap.Watch(climap.WatchOptions{FilePath: filePath, Format: dumpFormat})
	},
}

var (
	dumpFormat   string
	formatOutput bool
	formatCopy   bool
)

func init() {
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "Output format (text/yaml/json)")
	watchCmd.Flags().StringVarP(&dumpFormat, "format", "f", "text", "Output format (text/yaml/json)")

	formatCmd.Flags().BoolVarP(&formatOutput, "output", "o", false, "Parse the fragment as an output sequence instead of an input")
	formatCmd.Flags().BoolVarP(&formatCopy, "copy", "c", false, "Copy the formatted result to the clipboard")

	rootCmd.AddCommand(checkCmd, dumpCmd, formatCmd, watchCmd)
}

// resolvePath returns the explicit file argument if given, otherwise
// falls back to the default config location under $XDG_CONFIG_HOME.
func resolvePath(args []string) (string, error) {
	if err := config.Initialize(); err != nil {
		return "", fmt.Errorf("failed to initialize config: %w", err)
	}
	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}
	return config.Resolve(explicit)
}
