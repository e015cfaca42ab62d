package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlbridge-labs/sqlbridge/internal/cli/output"
)

// NewHistoryCommand creates the history command with its subcommands.
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the recorded query history",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded queries, most recent first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.List()
			if err != nil {
				return err
			}
			return output.History(cmd.OutOrStdout(), entries, outputMode())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded queries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})

	return cmd
}
