package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newStatsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show upload success and failure totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.Vault.Stats()
			fmt.Fprintf(a.out, "uploads succeeded: %d\nuploads failed:    %d\n", s.Succeeded, s.Failed)
			return nil
		},
	}
}

func newActivityCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "activity",
		Short: "Show the recent-activity journal, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.Vault.RecentActivity()
			if len(entries) == 0 {
				fmt.Fprintln(a.out, "No recent activity")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tKIND\tSUBJECT")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.At.Format("2006-01-02 15:04"), e.Kind, e.Subject)
			}
			return w.Flush()
		},
	}
}
