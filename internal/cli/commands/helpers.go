// Package commands implements the sqlbridge subcommands.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sqlbridge-labs/sqlbridge/internal/cli/config"
	"github.com/sqlbridge-labs/sqlbridge/internal/cli/output"
	"github.com/sqlbridge-labs/sqlbridge/internal/history"
)

// readQuery resolves the SQL input: a literal argument, a file via
// --file, or stdin when the argument is "-".
func readQuery(cmd *cobra.Command, args []string, filePath string) (string, error) {
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read query file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no query given: pass SQL as an argument, use --file, or pipe via -")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read query from stdin: %w", err)
		}
		return string(data), nil
	}
	return args[0], nil
}

// outputMode returns the configured rendering mode.
func outputMode() output.Mode {
	if config.Current().Output == "json" {
		return output.ModeJSON
	}
	return output.ModeTable
}

// openHistory opens the configured history store, creating its parent
// directory if needed.
func openHistory() (*history.Store, error) {
	cfg := config.Current()
	path := cfg.HistoryPath
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	return history.Open(path, cfg.NewLogger())
}
