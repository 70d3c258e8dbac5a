package activity

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_BoundedNewestFirst(t *testing.T) {
	dir := t.TempDir()
	j, err := NewJournal(dir, 0) // DefaultLimit
	require.NoError(t, err)

	for i := 0; i < 15; i++ {
		require.NoError(t, j.Record(KindUpload, fmt.Sprintf("file-%d", i)))
	}

	recent := j.Recent()
	require.Len(t, recent, DefaultLimit)
	assert.Equal(t, "file-14", recent[0].Subject)
	assert.Equal(t, "file-5", recent[len(recent)-1].Subject)
}

func TestJournal_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	j, err := NewJournal(dir, 5)
	require.NoError(t, err)
	require.NoError(t, j.Record(KindDelete, "thesis.pdf"))
	require.NoError(t, j.UploadSucceeded())
	require.NoError(t, j.UploadSucceeded())
	require.NoError(t, j.UploadFailed())

	j2, err := NewJournal(dir, 5)
	require.NoError(t, err)

	recent := j2.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, KindDelete, recent[0].Kind)
	assert.Equal(t, "thesis.pdf", recent[0].Subject)

	stats := j2.Stats()
	assert.Equal(t, int64(2), stats.Succeeded)
	assert.Equal(t, int64(1), stats.Failed)
}

func TestNewJournal_MalformedState(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, recentFileName), []byte("{not json"), 0o600))

	_, err := NewJournal(dir, 5)
	assert.ErrorIs(t, err, common.ErrMalformedState)
}

func TestNewJournal_TrimsOversizedList(t *testing.T) {
	dir := t.TempDir()

	j, err := NewJournal(dir, 10)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, j.Record(KindMove, fmt.Sprintf("f%d", i)))
	}

	// reopen with a smaller limit
	j2, err := NewJournal(dir, 3)
	require.NoError(t, err)
	assert.Len(t, j2.Recent(), 3)
}
