package commands

import (
	"github.com/spf13/cobra"

	"github.com/sqlbridge-labs/sqlbridge/internal/cli/output"
	"github.com/sqlbridge-labs/sqlbridge/internal/templates"
	"github.com/sqlbridge-labs/sqlbridge/pkg/platform"
)

// TemplatesOptions holds options for the templates command.
type TemplatesOptions struct {
	Platform string
	Category string
}

// NewTemplatesCommand creates the templates command.
func NewTemplatesCommand() *cobra.Command {
	opts := &TemplatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List example queries per platform and category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var p platform.Platform
			if opts.Platform != "" {
				parsed, err := platform.Parse(opts.Platform)
				if err != nil {
					return err
				}
				p = parsed
			}
			list := templates.List(p, opts.Category)
			return output.Templates(cmd.OutOrStdout(), list, outputMode())
		},
	}

	cmd.Flags().StringVar(&opts.Platform, "platform", "", "Filter by platform")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category (basic|joins|aggregation|dates)")

	return cmd
}
