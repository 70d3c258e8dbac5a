package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFoldersCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "folders",
		Short: "List folders and their file counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.Vault.Folders(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PATH\tNAME\tFILES")
			for _, f := range items {
				fmt.Fprintf(w, "%s\t%s\t%d\n", f.Path, f.Name, f.FileCount)
			}
			return w.Flush()
		},
	}
}

func newMkdirCmd(a *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a folder (idempotent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.Vault.CreateFolder(cmd.Context(), args[0], name)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Folder %s (%s)\n", f.Path, f.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name (default: last path segment)")
	return cmd
}

func newRmdirCmd(a *App) *cobra.Command {
	var fallback string

	cmd := &cobra.Command{
		Use:   "rmdir <path>",
		Short: "Delete a folder, moving its files to a fallback folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Vault.DeleteFolder(cmd.Context(), args[0], fallback); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Folder deleted")
			return nil
		},
	}

	cmd.Flags().StringVar(&fallback, "fallback", "", "folder receiving the contained files (default /General)")
	return cmd
}
