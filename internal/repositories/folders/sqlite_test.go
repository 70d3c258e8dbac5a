package folders

import (
	"context"
	"database/sql"
	"testing"

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
CREATE TABLE folders (
  path TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  parent_path TEXT NOT NULL DEFAULT '',
  file_count INTEGER NOT NULL DEFAULT 0
);
`)
	require.NoError(t, err)

	return db
}

func TestUpsert_Idempotent(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Folder{Path: "/Papers", Name: "Papers"}))
	require.NoError(t, r.AdjustFileCount(ctx, "/Papers", 3))

	// second upsert must not reset the counter or create a duplicate
	require.NoError(t, r.Upsert(ctx, &models.Folder{Path: "/Papers", Name: "Renamed"}))

	got, err := r.GetByPath(ctx, "/Papers")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, int64(3), got.FileCount)

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetByPath_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByPath(context.Background(), "/missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAdjustFileCount(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Folder{Path: "/Papers", Name: "Papers"}))

	require.NoError(t, r.AdjustFileCount(ctx, "/Papers", 2))
	require.NoError(t, r.AdjustFileCount(ctx, "/Papers", -1))

	got, err := r.GetByPath(ctx, "/Papers")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.FileCount)

	assert.ErrorIs(t, r.AdjustFileCount(ctx, "/missing", 1), common.ErrNotFound)
}

func TestDeleteByPath(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Folder{Path: "/Papers", Name: "Papers"}))
	require.NoError(t, r.DeleteByPath(ctx, "/Papers"))

	_, err := r.GetByPath(ctx, "/Papers")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.ErrorIs(t, r.DeleteByPath(ctx, "/Papers"), common.ErrNotFound)
}

func TestGetAll_Ordered(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.Folder{Path: "/b", Name: "b"}))
	require.NoError(t, r.Upsert(ctx, &models.Folder{Path: "/a", Name: "a"}))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "/a", all[0].Path)
	assert.Equal(t, "/b", all[1].Path)
}
