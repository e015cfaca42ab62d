package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sqlbridge-labs/sqlbridge/internal/cli/output"
	"github.com/sqlbridge-labs/sqlbridge/pkg/export"
	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Platform string
	Format   string
	File     string
	OutDir   string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export [sql]",
		Short: "Export a query as workflow-tool model artifacts",
		Long: `Generate a model body, documentation artifact, and configuration
artifact for a workflow tool (dbt or Dataform) from a query.`,
		Example: `  # Export a BigQuery query as a dbt model
  sqlbridge export --platform bigquery --format dbt --file query.sql

  # Write the artifacts to a directory
  sqlbridge export --platform snowflake --format dataform --file query.sql --out-dir ./model`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Query platform (bigquery|snowflake|databricks)")
	cmd.Flags().StringVar(&opts.Format, "format", "dbt", "Export format (dbt|dataform)")
	cmd.Flags().StringVar(&opts.File, "file", "", "Read the query from a file")
	cmd.Flags().StringVar(&opts.OutDir, "out-dir", "", "Write artifacts into this directory instead of stdout")
	_ = cmd.MarkFlagRequired("platform")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *ExportOptions) error {
	p, err := platform.Parse(opts.Platform)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	sql, err := readQuery(cmd, args, opts.File)
	if err != nil {
		return err
	}

	result := export.Export(sql, p, format)

	if opts.OutDir != "" && result.Success {
		return writeArtifacts(opts.OutDir, format, result)
	}
	return output.Export(cmd.OutOrStdout(), result, outputMode())
}

// writeArtifacts writes the three artifacts as files named for the format.
func writeArtifacts(dir string, format export.Format, r export.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	modelName := "model.sql"
	configName := "dbt_project.yml"
	if format == export.FormatDataform {
		modelName = "model.sqlx"
		configName = "workflow_settings.yaml"
	}

	files := map[string]string{
		modelName:    r.Model,
		"schema.yml": r.Documentation,
		configName:   r.Config,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}
