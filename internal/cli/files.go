package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUploadCmd(a *App) *cobra.Command {
	var folder, mimeType string

	cmd := &cobra.Command{
		Use:   "upload <path>",
		Short: "Store a file in the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			name := filepath.Base(args[0])
			mt := mimeType
			if mt == "" {
				mt = mime.TypeByExtension(filepath.Ext(name))
			}
			if mt == "" {
				mt = "application/octet-stream"
			}

			f, err := a.Vault.Store(cmd.Context(), name, mt, payload, folder)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Stored %s (%d bytes) in %s\nid: %s\n", f.Name, f.SizeBytes, f.FolderPath, f.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "target folder path (default /General)")
	cmd.Flags().StringVar(&mimeType, "mime", "", "override the detected MIME type")
	return cmd
}

func newDownloadCmd(a *App) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "download <id>",
		Short: "Write a stored file's payload to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.Vault.Download(cmd.Context(), args[0], outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "destination directory")
	return cmd
}

func newGetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a stored file's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.Vault.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "id:       %s\nname:     %s\nmime:     %s\nsize:     %d\nfolder:   %s\nuploaded: %s\n",
				f.ID, f.Name, f.MimeType, f.SizeBytes, f.FolderPath,
				f.UploadedAt.Format("2006-01-02 15:04:05"))
			return nil
		},
	}
}

func newListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls [folder]",
		Short: "List stored files, optionally restricted to one folder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := ""
			if len(args) == 1 {
				folder = args[0]
			}

			items, err := a.Vault.List(cmd.Context(), folder)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tFOLDER\tSIZE\tUPLOADED")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					item.ID, item.Name, item.FolderPath, item.SizeBytes,
					item.UploadedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func newRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a stored file and its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Vault.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Deleted")
			return nil
		},
	}
}

func newMoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <id> <folder>",
		Short: "Move a stored file to another folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Vault.Move(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Moved to %s\n", args[1])
			return nil
		},
	}
}
