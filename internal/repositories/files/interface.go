package files

import (
	"context"

	"github.com/dmitrijs2005/thesisvault/internal/models"
)

// Repository describes persistence operations for StoredFile records.
// Implementations are backed by a local SQLite database and are safe to use
// with either *sql.DB or an open transaction (dbx.DBTX).
type Repository interface {
	// Insert stores a new file record including its payload bytes.
	Insert(ctx context.Context, f *models.StoredFile) error

	// GetByID returns the full record, payload included.
	// Returns common.ErrNotFound if no record matches.
	GetByID(ctx context.Context, id string) (*models.StoredFile, error)

	// List returns payload-free metadata for all files, or for the files of
	// one folder when folderPath is non-empty. The payload column is never
	// read.
	List(ctx context.Context, folderPath string) ([]models.FileMetadata, error)

	// UpdateFolder reassigns a single file to another folder.
	// Returns common.ErrNotFound if no record matches.
	UpdateFolder(ctx context.Context, id, folderPath string) error

	// MoveAll reassigns every file under fromPath to toPath and returns the
	// number of files moved.
	MoveAll(ctx context.Context, fromPath, toPath string) (int64, error)

	// DeleteByID removes the record.
	// Returns common.ErrNotFound if no record matches.
	DeleteByID(ctx context.Context, id string) error
}
