package folders

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"github.com/dmitrijs2005/thesisvault/internal/dbx"
	"github.com/dmitrijs2005/thesisvault/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, f *models.Folder) error {
	query := `INSERT INTO folders (path, name, parent_path, file_count)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET name = excluded.name,
				parent_path = excluded.parent_path`
	_, err := r.db.ExecContext(ctx, query, f.Path, f.Name, f.ParentPath, f.FileCount)
	if err != nil {
		return fmt.Errorf("failed to upsert folder: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByPath(ctx context.Context, path string) (*models.Folder, error) {
	query := `SELECT path, name, parent_path, file_count FROM folders WHERE path=?`
	row := r.db.QueryRowContext(ctx, query, path)

	f := &models.Folder{}
	err := row.Scan(&f.Path, &f.Name, &f.ParentPath, &f.FileCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select folder: %w", err)
	}
	return f, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Folder, error) {
	query := `SELECT path, name, parent_path, file_count FROM folders ORDER BY path`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select folders: %w", err)
	}
	defer rows.Close()

	var result []models.Folder
	for rows.Next() {
		var item models.Folder
		if err := rows.Scan(&item.Path, &item.Name, &item.ParentPath, &item.FileCount); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) AdjustFileCount(ctx context.Context, path string, delta int64) error {
	query := `UPDATE folders SET file_count = file_count + ? WHERE path=?`
	res, err := r.db.ExecContext(ctx, query, delta, path)
	if err != nil {
		return fmt.Errorf("failed to adjust file count: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteByPath(ctx context.Context, path string) error {
	query := `DELETE FROM folders WHERE path=?`
	res, err := r.db.ExecContext(ctx, query, path)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra != 1 {
		return common.ErrNotFound
	}
	return nil
}
