// Package activity keeps a bounded recent-activity list and running upload
// statistics, persisted as two small JSON files next to the database.
package activity

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/thesisvault/internal/common"
	"github.com/dmitrijs2005/thesisvault/internal/filex"
)

const (
	// DefaultLimit is how many recent entries are retained.
	DefaultLimit = 10

	recentFileName = "recent_activity.json"
	statsFileName  = "upload_stats.json"
)

// Kind labels a journal entry.
type Kind string

const (
	KindUpload       Kind = "upload"
	KindDownload     Kind = "download"
	KindDelete       Kind = "delete"
	KindMove         Kind = "move"
	KindFolderDelete Kind = "folder_delete"
)

// Entry is one recent-activity record.
type Entry struct {
	Kind    Kind      `json:"kind"`
	Subject string    `json:"subject"`
	At      time.Time `json:"at"`
}

// Stats holds the persisted running totals of upload outcomes.
type Stats struct {
	Succeeded int64 `json:"succeeded"`
	Failed    int64 `json:"failed"`
}

// Journal persists a newest-first, bounded activity list plus upload stats.
// It is safe for concurrent use. Construct one per data directory and inject
// it where needed.
type Journal struct {
	mu     sync.Mutex
	dir    string
	limit  int
	recent []Entry
	stats  Stats
}

// NewJournal loads (or initializes) the journal state kept under dir.
// A limit <= 0 falls back to DefaultLimit.
func NewJournal(dir string, limit int) (*Journal, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if err := filex.EnsureDir(dir); err != nil {
		return nil, err
	}

	j := &Journal{dir: dir, limit: limit}
	if err := readJSON(filepath.Join(dir, recentFileName), &j.recent); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, statsFileName), &j.stats); err != nil {
		return nil, err
	}
	if len(j.recent) > limit {
		j.recent = j.recent[:limit]
	}
	return j, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", common.ErrMalformedState, path, err)
	}
	return nil
}

// Record prepends an entry, trims the list to the limit and persists it.
func (j *Journal) Record(kind Kind, subject string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	entry := Entry{Kind: kind, Subject: subject, At: time.Now().UTC()}
	j.recent = append([]Entry{entry}, j.recent...)
	if len(j.recent) > j.limit {
		j.recent = j.recent[:j.limit]
	}
	return j.saveRecent()
}

// Recent returns a copy of the activity list, newest first.
func (j *Journal) Recent() []Entry {
	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Entry, len(j.recent))
	copy(out, j.recent)
	return out
}

// UploadSucceeded increments the success counter and persists the stats.
func (j *Journal) UploadSucceeded() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stats.Succeeded++
	return j.saveStats()
}

// UploadFailed increments the failure counter and persists the stats.
func (j *Journal) UploadFailed() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stats.Failed++
	return j.saveStats()
}

// Stats returns the current totals.
func (j *Journal) Stats() Stats {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.stats
}

func (j *Journal) saveRecent() error {
	data, err := json.Marshal(j.recent)
	if err != nil {
		return fmt.Errorf("marshal recent activity: %w", err)
	}
	return filex.WriteFileAtomic(filepath.Join(j.dir, recentFileName), data, 0o600)
}

func (j *Journal) saveStats() error {
	data, err := json.Marshal(j.stats)
	if err != nil {
		return fmt.Errorf("marshal upload stats: %w", err)
	}
	return filex.WriteFileAtomic(filepath.Join(j.dir, statsFileName), data, 0o600)
}
