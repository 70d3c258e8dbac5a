package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/thesisvault/internal/models"
)

func newNoteCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes attached to stored files",
	}
	cmd.AddCommand(
		newNoteAddCmd(a),
		newNoteListCmd(a),
		newNoteSearchCmd(a),
		newNoteRemoveCmd(a),
	)
	return cmd
}

func newNoteAddCmd(a *App) *cobra.Command {
	var (
		fileID   string
		title    string
		content  string
		tags     []string
		noteType string
		color    string
		page     int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Attach a note to a stored file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := &models.Note{
				FileID:  fileID,
				Title:   title,
				Content: content,
				Tags:    tags,
				Type:    models.NoteType(noteType),
				Color:   color,
			}
			if cmd.Flags().Changed("page") {
				n.PageNumber = &page
			}
			saved, err := a.Vault.AddNote(cmd.Context(), n)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Note added\nid: %s\n", saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&fileID, "file", "", "id of the file the note belongs to")
	cmd.Flags().StringVarP(&title, "title", "t", "", "note title")
	cmd.Flags().StringVar(&content, "content", "", "note body")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&noteType, "type", "", "note type: general, annotation or task")
	cmd.Flags().StringVar(&color, "color", "", "display color")
	cmd.Flags().IntVar(&page, "page", 0, "page number the note refers to")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newNoteListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <file-id>",
		Short: "List notes attached to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.Vault.NotesForFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printNotes(a, items)
		},
	}
}

func newNoteSearchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search notes by title, content or tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.Vault.SearchNotes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printNotes(a, items)
		},
	}
}

func newNoteRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Vault.DeleteNote(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(a.out, "Deleted")
			return nil
		},
	}
}

func printNotes(a *App, items []models.Note) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tTITLE\tTAGS\tUPDATED")
	for _, n := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			n.ID, n.Type, n.Title, strings.Join(n.Tags, ","),
			n.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}
