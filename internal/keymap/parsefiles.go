package keymap

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Jai-JAP/keymapper/internal/configlex"
)

// ParseFiles reads and tokenizes several configuration files
// concurrently, then parses their combined statement stream as one
// logical configuration, in the order paths were given. Concurrency
// only covers I/O and tokenizing — the statements still flow through
// a single sequential parser, since macros, logical keys and commands
// accumulate across the whole file set.
func ParseFiles(paths []string) (*Config, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no configuration files given")
	}
	perFile := make([][]configlex.Statement, len(paths))

	g, _ := errgroup.WithContext(context.Background())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			stmts, err := configlex.Tokenize(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			perFile[i] = stmts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []configlex.Statement
	for _, stmts := range perFile {
		all = append(all, stmts...)
	}
	return parseStatements(all)
}
