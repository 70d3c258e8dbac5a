package notes

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"github.com/dmitrijs2005/thesisvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE notes (
  id TEXT PRIMARY KEY,
  file_id TEXT NOT NULL DEFAULT '',
  type TEXT NOT NULL DEFAULT 'general',
  title TEXT NOT NULL DEFAULT '',
  content TEXT NOT NULL DEFAULT '',
  tags TEXT NOT NULL DEFAULT '[]',
  color TEXT NOT NULL DEFAULT '',
  position_x REAL,
  position_y REAL,
  page_number INTEGER,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func sampleNote(id, fileID string) *models.Note {
	now := time.Now().UTC()
	return &models.Note{
		ID:        id,
		FileID:    fileID,
		Type:      models.NoteTypeGeneral,
		Title:     "title " + id,
		Content:   "content " + id,
		Tags:      []string{"thesis", id},
		Color:     "#ffcc00",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestInsertAndGetByID_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	page := 4
	n := sampleNote("n1", "f1")
	n.Type = models.NoteTypeAnnotation
	n.Position = &models.Position{X: 0.25, Y: 0.75}
	n.PageNumber = &page
	require.NoError(t, r.Insert(ctx, n))

	got, err := r.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "f1", got.FileID)
	assert.Equal(t, models.NoteTypeAnnotation, got.Type)
	assert.Equal(t, []string{"thesis", "n1"}, got.Tags)
	require.NotNil(t, got.Position)
	assert.Equal(t, 0.25, got.Position.X)
	assert.Equal(t, 0.75, got.Position.Y)
	require.NotNil(t, got.PageNumber)
	assert.Equal(t, 4, *got.PageNumber)
}

func TestGetByID_OptionalFieldsAbsent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, sampleNote("n1", "")))

	got, err := r.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.Empty(t, got.FileID)
	assert.Nil(t, got.Position)
	assert.Nil(t, got.PageNumber)
}

func TestGetByFileID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, sampleNote("n1", "f1")))
	require.NoError(t, r.Insert(ctx, sampleNote("n2", "f1")))
	require.NoError(t, r.Insert(ctx, sampleNote("n3", "f2")))

	got, err := r.GetByFileID(ctx, "f1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = r.GetByFileID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	n := sampleNote("n1", "f1")
	require.NoError(t, r.Insert(ctx, n))

	n.Title = "changed"
	n.Tags = []string{"done"}
	n.UpdatedAt = n.UpdatedAt.Add(time.Minute)
	require.NoError(t, r.Update(ctx, n))

	got, err := r.GetByID(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "changed", got.Title)
	assert.Equal(t, []string{"done"}, got.Tags)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	missing := sampleNote("missing", "")
	assert.ErrorIs(t, r.Update(ctx, missing), common.ErrNotFound)
}

func TestDeleteByID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, sampleNote("n1", "")))
	require.NoError(t, r.DeleteByID(ctx, "n1"))

	_, err := r.GetByID(ctx, "n1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, r.DeleteByID(ctx, "n1"), common.ErrNotFound)
}

func TestDeleteByFileID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Insert(ctx, sampleNote("n1", "f1")))
	require.NoError(t, r.Insert(ctx, sampleNote("n2", "f1")))
	require.NoError(t, r.Insert(ctx, sampleNote("n3", "f2")))

	n, err := r.DeleteByFileID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// no notes left for the file; deleting again is not an error
	n, err = r.DeleteByFileID(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestSearch(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	a := sampleNote("n1", "")
	a.Title = "Literature review"
	a.Content = "compare methods"
	a.Tags = []string{"chapter2"}
	require.NoError(t, r.Insert(ctx, a))

	b := sampleNote("n2", "")
	b.Title = "Defense prep"
	b.Content = "slides for the REVIEW committee"
	b.Tags = []string{"talk"}
	require.NoError(t, r.Insert(ctx, b))

	got, err := r.Search(ctx, "review")
	require.NoError(t, err)
	assert.Len(t, got, 2) // matches title and content, case-insensitively

	got, err = r.Search(ctx, "chapter2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)

	got, err = r.Search(ctx, "nothing-here")
	require.NoError(t, err)
	assert.Empty(t, got)
}
