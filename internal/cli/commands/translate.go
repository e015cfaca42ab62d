package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/sqlbridge-labs/sqlbridge/internal/cli/config"
	"github.com/sqlbridge-labs/sqlbridge/internal/cli/output"
	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/translate"
)

// TranslateOptions holds options for the translate command.
type TranslateOptions struct {
	From      string
	To        string
	File      string
	NoHistory bool
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	opts := &TranslateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [sql]",
		Short: "Translate a query between warehouse dialects",
		Long: `Translate a SQL query from one warehouse platform to another,
reporting per-line compatibility issues and a 0-100 score.`,
		Example: `  # Translate a BigQuery query to Snowflake
  sqlbridge translate --from bigquery --to snowflake "SELECT DATE_ADD(CURRENT_DATE(), INTERVAL 1 DAY) FROM a.b.c"

  # Read the query from a file
  sqlbridge translate --from snowflake --to databricks --file query.sql

  # Pipe the query via stdin
  cat query.sql | sqlbridge translate --from bigquery --to databricks -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "Source platform (bigquery|snowflake|databricks)")
	cmd.Flags().StringVar(&opts.To, "to", "", "Target platform (bigquery|snowflake|databricks)")
	cmd.Flags().StringVar(&opts.File, "file", "", "Read the query from a file")
	cmd.Flags().BoolVar(&opts.NoHistory, "no-history", false, "Do not record the query in history")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func runTranslate(cmd *cobra.Command, args []string, opts *TranslateOptions) error {
	source, err := platform.Parse(opts.From)
	if err != nil {
		return err
	}
	target, err := platform.Parse(opts.To)
	if err != nil {
		return err
	}

	sql, err := readQuery(cmd, args, opts.File)
	if err != nil {
		return err
	}

	result := translate.Translate(sql, source, target)

	if !opts.NoHistory {
		recordHistory(sql, source)
	}

	return output.Translation(cmd.OutOrStdout(), result, outputMode())
}

// recordHistory stores the query best-effort: history failures never
// fail the analysis itself.
func recordHistory(sql string, p platform.Platform) {
	logger := config.Current().NewLogger()
	store, err := openHistory()
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer store.Close()
	if err := store.RecordQuery(sql, p, time.Now()); err != nil {
		logger.Warn("failed to record query", "error", err)
	}
}
