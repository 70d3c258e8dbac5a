package vault

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"github.com/dmitrijs2005/thesisvault/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNote_AssignsIDAndTimestamps(t *testing.T) {
	v := openTestVault(t)
	ctx := context.Background()

	n, err := v.AddNote(ctx, &models.Note{Title: "todo", Content: "rewrite abstract"})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, models.NoteTypeGeneral, n.Type)
	assert.False(t, n.CreatedAt.IsZero())
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
}

func TestAddNote_DanglingFileIDAllowed(t *testing.T) {
	v := openTestVault(t)
	ctx := context.Background()

	// weak reference: a note may point at a file id that does not exist
	n, err := v.AddNote(ctx, &models.Note{FileID: "no-such-file", Title: "orphan"})
	require.NoError(t, err)

	got, err := v.NotesForFile(ctx, "no-such-file")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, n.ID, got[0].ID)
}

func TestUpdateNote_RefreshesUpdatedAt(t *testing.T) {
	v := openTestVault(t)
	ctx := context.Background()

	n, err := v.AddNote(ctx, &models.Note{Title: "before"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	n.Title = "after"
	n.Tags = []string{"edited"}
	require.NoError(t, v.UpdateNote(ctx, n))

	got, err := v.SearchNotes(ctx, "after")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"edited"}, got[0].Tags)
	assert.True(t, got[0].UpdatedAt.After(got[0].CreatedAt))
}

func TestDeleteNote(t *testing.T) {
	v := openTestVault(t)
	ctx := context.Background()

	n, err := v.AddNote(ctx, &models.Note{Title: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, v.DeleteNote(ctx, n.ID))
	assert.ErrorIs(t, v.DeleteNote(ctx, n.ID), common.ErrNotFound)
}

func TestDeleteNotesForFile_LeavesFileIntact(t *testing.T) {
	v := openTestVault(t)
	ctx := context.Background()

	f, err := v.Store(ctx, "a.txt", "text/plain", []byte("a"), "/Papers")
	require.NoError(t, err)

	for _, title := range []string{"n1", "n2", "n3"} {
		_, err := v.AddNote(ctx, &models.Note{FileID: f.ID, Title: title})
		require.NoError(t, err)
	}

	deleted, err := v.DeleteNotesForFile(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	// explicit cascade does not touch the file itself
	_, err = v.Get(ctx, f.ID)
	assert.NoError(t, err)
}

func TestSearchNotes(t *testing.T) {
	v := openTestVault(t)
	ctx := context.Background()

	_, err := v.AddNote(ctx, &models.Note{Title: "Methodology", Content: "survey design"})
	require.NoError(t, err)
	_, err = v.AddNote(ctx, &models.Note{Title: "Results", Tags: []string{"methodology", "stats"}})
	require.NoError(t, err)
	_, err = v.AddNote(ctx, &models.Note{Title: "Unrelated"})
	require.NoError(t, err)

	got, err := v.SearchNotes(ctx, "methodology")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
