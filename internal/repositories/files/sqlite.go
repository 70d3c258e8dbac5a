package files

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

func (r *SQLiteRepository) Insert(ctx context.Context, f *models.StoredFile) error {
	query := `INSERT INTO files (id, name, mime_type, size_bytes, payload, folder_path, uploaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.MimeType, f.SizeBytes, f.Payload, f.FolderPath, f.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to insert file: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.StoredFile, error) {
	query := `SELECT id, name, mime_type, size_bytes, payload, folder_path, uploaded_at
			FROM files WHERE id=?`
	row := r.db.QueryRowContext(ctx, query, id)

	f := &models.StoredFile{}
	err := row.Scan(&f.ID, &f.Name, &f.MimeType, &f.SizeBytes, &f.Payload, &f.FolderPath, &f.UploadedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select file: %w", err)
	}
	return f, nil
}

func (r *SQLiteRepository) List(ctx context.Context, folderPath string) ([]models.FileMetadata, error) {
	query := `SELECT id, name, mime_type, size_bytes, folder_path, uploaded_at FROM files`
	args := []any{}
	if folderPath != "" {
		query += ` WHERE folder_path=?`
		args = append(args, folderPath)
	}
	query += ` ORDER BY uploaded_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select files: %w", err)
	}
	defer rows.Close()

	var result []models.FileMetadata
	for rows.Next() {
		var item models.FileMetadata
		if err := rows.Scan(&item.ID, &item.Name, &item.MimeType, &item.SizeBytes, &item.FolderPath, &item.UploadedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) UpdateFolder(ctx context.Context, id, folderPath string) error {
	query := `UPDATE files SET folder_path=? WHERE id=?`
	res, err := r.db.ExecContext(ctx, query, folderPath, id)
	if err != nil {
		return fmt.Errorf("failed to update file folder: %w", err)
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

func (r *SQLiteRepository) MoveAll(ctx context.Context, fromPath, toPath string) (int64, error) {
	query := `UPDATE files SET folder_path=? WHERE folder_path=?`
	res, err := r.db.ExecContext(ctx, query, toPath, fromPath)
	if err != nil {
		return 0, fmt.Errorf("failed to move files: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	query := `DELETE FROM files WHERE id=?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
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
