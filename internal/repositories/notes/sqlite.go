package notes

import (
	"context"
	"database/sql"
	"encoding/json"
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

const noteColumns = `id, file_id, type, title, content, tags, color, position_x, position_y, page_number, created_at, updated_at`

func noteArgs(n *models.Note) ([]any, error) {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tags: %w", err)
	}

	var posX, posY sql.NullFloat64
	if n.Position != nil {
		posX = sql.NullFloat64{Float64: n.Position.X, Valid: true}
		posY = sql.NullFloat64{Float64: n.Position.Y, Valid: true}
	}
	var page sql.NullInt64
	if n.PageNumber != nil {
		page = sql.NullInt64{Int64: int64(*n.PageNumber), Valid: true}
	}

	return []any{n.ID, n.FileID, string(n.Type), n.Title, n.Content, string(tagsJSON),
		n.Color, posX, posY, page, n.CreatedAt, n.UpdatedAt}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (*models.Note, error) {
	n := &models.Note{}
	var (
		typ        string
		tagsJSON   string
		posX, posY sql.NullFloat64
		page       sql.NullInt64
	)

	err := row.Scan(&n.ID, &n.FileID, &typ, &n.Title, &n.Content, &tagsJSON,
		&n.Color, &posX, &posY, &page, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}

	n.Type = models.NoteType(typ)
	if err := json.Unmarshal([]byte(tagsJSON), &n.Tags); err != nil {
		return nil, fmt.Errorf("failed to parse tags: %w", err)
	}
	if posX.Valid && posY.Valid {
		n.Position = &models.Position{X: posX.Float64, Y: posY.Float64}
	}
	if page.Valid {
		p := int(page.Int64)
		n.PageNumber = &p
	}
	return n, nil
}

func (r *SQLiteRepository) Insert(ctx context.Context, n *models.Note) error {
	args, err := noteArgs(n)
	if err != nil {
		return err
	}
	query := `INSERT INTO notes (` + noteColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE id=?`
	n, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select note: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) GetByFileID(ctx context.Context, fileID string) ([]models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE file_id=? ORDER BY created_at DESC, id`
	return r.queryNotes(ctx, query, fileID)
}

func (r *SQLiteRepository) Update(ctx context.Context, n *models.Note) error {
	args, err := noteArgs(n)
	if err != nil {
		return err
	}
	query := `UPDATE notes SET file_id=?, type=?, title=?, content=?, tags=?, color=?,
			position_x=?, position_y=?, page_number=?, created_at=?, updated_at=?
			WHERE id=?`
	// noteArgs puts the id first; rotate it to the WHERE clause.
	res, err := r.db.ExecContext(ctx, query, append(args[1:], args[0])...)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
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

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
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

func (r *SQLiteRepository) DeleteByFileID(ctx context.Context, fileID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE file_id=?`, fileID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete notes: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra, nil
}

func (r *SQLiteRepository) Search(ctx context.Context, query string) ([]models.Note, error) {
	pattern := "%" + query + "%"
	q := `SELECT ` + noteColumns + ` FROM notes
			WHERE title LIKE ? OR content LIKE ? OR tags LIKE ?
			ORDER BY created_at DESC, id`
	return r.queryNotes(ctx, q, pattern, pattern, pattern)
}

func (r *SQLiteRepository) queryNotes(ctx context.Context, query string, args ...any) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []models.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
