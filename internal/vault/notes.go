package vault

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/thesisvault/internal/models"
	"github.com/dmitrijs2005/thesisvault/internal/repositories/notes"
	"github.com/google/uuid"
)

// AddNote stores a new note. ID and timestamps are assigned here; FileID may
// be empty for free-standing notes.
func (v *Vault) AddNote(ctx context.Context, n *models.Note) (*models.Note, error) {
	now := time.Now().UTC()
	n.ID = uuid.NewString()
	n.CreatedAt = now
	n.UpdatedAt = now
	if n.Type == "" {
		n.Type = models.NoteTypeGeneral
	}

	if err := notes.NewSQLiteRepository(v.db).Insert(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to add note: %w", err)
	}
	return n, nil
}

// NotesForFile lists the notes attached to a file, newest first.
func (v *Vault) NotesForFile(ctx context.Context, fileID string) ([]models.Note, error) {
	return notes.NewSQLiteRepository(v.db).GetByFileID(ctx, fileID)
}

// UpdateNote rewrites a note's mutable fields and refreshes UpdatedAt.
func (v *Vault) UpdateNote(ctx context.Context, n *models.Note) error {
	n.UpdatedAt = time.Now().UTC()
	if err := notes.NewSQLiteRepository(v.db).Update(ctx, n); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return nil
}

// DeleteNote removes one note.
func (v *Vault) DeleteNote(ctx context.Context, id string) error {
	if err := notes.NewSQLiteRepository(v.db).DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

// DeleteNotesForFile removes every note attached to a file without touching
// the file itself, and returns the number of notes deleted.
func (v *Vault) DeleteNotesForFile(ctx context.Context, fileID string) (int64, error) {
	n, err := notes.NewSQLiteRepository(v.db).DeleteByFileID(ctx, fileID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notes: %w", err)
	}
	return n, nil
}

// SearchNotes returns notes matching the query in title, content or tags.
func (v *Vault) SearchNotes(ctx context.Context, query string) ([]models.Note, error) {
	return notes.NewSQLiteRepository(v.db).Search(ctx, query)
}
