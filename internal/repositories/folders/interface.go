package folders

import (
	"context"

	"github.com/dmitrijs2005/thesisvault/internal/models"
)

// Repository describes persistence operations for Folder records.
type Repository interface {
	// Upsert creates the folder or, when the path already exists, updates
	// name and parent_path only. The file counter of an existing folder is
	// left untouched, which makes the call idempotent.
	Upsert(ctx context.Context, f *models.Folder) error

	// GetByPath returns one folder. Returns common.ErrNotFound if missing.
	GetByPath(ctx context.Context, path string) (*models.Folder, error)

	// GetAll lists all folders ordered by path.
	GetAll(ctx context.Context) ([]models.Folder, error)

	// AdjustFileCount applies a relative delta to the folder's counter in a
	// single UPDATE, so concurrent adjustments never lose increments.
	AdjustFileCount(ctx context.Context, path string, delta int64) error

	// DeleteByPath removes the folder record.
	// Returns common.ErrNotFound if no record matches.
	DeleteByPath(ctx context.Context, path string) error
}
