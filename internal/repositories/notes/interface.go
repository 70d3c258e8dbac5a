package notes

import (
	"context"

	"github.com/dmitrijs2005/thesisvault/internal/models"
)

// Repository describes persistence operations for Note records. Notes are
// keyed by generated ids with a secondary index on the owning file id.
type Repository interface {
	// Insert stores a new note.
	Insert(ctx context.Context, n *models.Note) error

	// GetByID returns one note. Returns common.ErrNotFound if missing.
	GetByID(ctx context.Context, id string) (*models.Note, error)

	// GetByFileID lists the notes attached to a file, newest first.
	GetByFileID(ctx context.Context, fileID string) ([]models.Note, error)

	// Update rewrites the mutable fields of a note.
	// Returns common.ErrNotFound if no record matches.
	Update(ctx context.Context, n *models.Note) error

	// DeleteByID removes one note.
	// Returns common.ErrNotFound if no record matches.
	DeleteByID(ctx context.Context, id string) error

	// DeleteByFileID removes every note attached to a file and returns the
	// number of notes deleted. Zero deletions is not an error.
	DeleteByFileID(ctx context.Context, fileID string) (int64, error)

	// Search returns notes whose title, content or tags contain the query,
	// case-insensitively.
	Search(ctx context.Context, query string) ([]models.Note, error)
}
