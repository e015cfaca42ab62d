package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqlbridge-labs/sqlbridge/internal/cli/output"
	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
	"github.com/sqlbridge-labs/sqlbridge/pkg/schema"
)

// SchemaOptions holds options for the schema command.
type SchemaOptions struct {
	Platform string
	File     string
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand() *cobra.Command {
	opts := &SchemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema [sql]",
		Short: "Extract a table/column lineage graph from a query",
		Long: `Analyze a query's FROM/JOIN clauses and column references to build
a graph of tables, columns, and inferred join relationships.`,
		Example: `  # Extract the lineage graph of a join
  sqlbridge schema --platform bigquery "SELECT x.id FROM orders x JOIN users u ON x.user_id = u.id"

  # Output as JSON
  sqlbridge schema --platform snowflake --file query.sql -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Query platform (bigquery|snowflake|databricks)")
	cmd.Flags().StringVar(&opts.File, "file", "", "Read the query from a file")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func runSchema(cmd *cobra.Command, args []string, opts *SchemaOptions) error {
	p, err := platform.Parse(opts.Platform)
	if err != nil {
		return err
	}

	sql, err := readQuery(cmd, args, opts.File)
	if err != nil {
		return err
	}

	graph := schema.Extract(sql, p)
	return output.Schema(cmd.OutOrStdout(), graph, outputMode())
}
