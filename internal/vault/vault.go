// Package vault implements the transactional object store of thesisvault:
// binary files grouped into folders, notes attached to files, and the
// bookkeeping around them (denormalized folder counters, recent-activity
// journal, upload statistics).
package vault

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/thesisvault/internal/activity"
	"github.com/dmitrijs2005/thesisvault/internal/dbx"
	"github.com/dmitrijs2005/thesisvault/internal/filex"
	"github.com/dmitrijs2005/thesisvault/internal/logging"
	"github.com/dmitrijs2005/thesisvault/internal/models"
	"github.com/dmitrijs2005/thesisvault/internal/repositories/files"
	"github.com/dmitrijs2005/thesisvault/internal/repositories/folders"
	"github.com/dmitrijs2005/thesisvault/internal/repositories/notes"
	"github.com/google/uuid"
)

// Vault is the storage service. Construct one with Open and pass it by
// reference; it owns the database handle.
//
// Invariant: after every committed transaction, each folder's file_count
// equals the number of files whose folder_path matches. All multi-statement
// mutations therefore run inside dbx.WithTx, and counters are only ever
// adjusted with relative deltas.
type Vault struct {
	db      *sql.DB
	journal *activity.Journal
	log     logging.Logger
}

// Open opens (creating if needed) the vault database at dsn, applies
// pending migrations and returns the service.
func Open(ctx context.Context, dsn string, journal *activity.Journal, log logging.Logger) (*Vault, error) {
	db, err := openDatabase(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Vault{db: db, journal: journal, log: log}, nil
}

// Close releases the database handle.
func (v *Vault) Close() error {
	return v.db.Close()
}

// record writes a journal entry. Journal failures never fail the operation
// that triggered them; they are logged and dropped.
func (v *Vault) record(ctx context.Context, kind activity.Kind, subject string) {
	if v.journal == nil {
		return
	}
	if err := v.journal.Record(kind, subject); err != nil {
		v.log.Warn(ctx, "failed to record activity", "kind", string(kind), "error", err)
	}
}

func (v *Vault) countUpload(ctx context.Context, ok bool) {
	if v.journal == nil {
		return
	}
	var err error
	if ok {
		err = v.journal.UploadSucceeded()
	} else {
		err = v.journal.UploadFailed()
	}
	if err != nil {
		v.log.Warn(ctx, "failed to update upload stats", "error", err)
	}
}

// upsertFolder makes sure a folder record exists for path, deriving its name
// and parent from the path. Existing counters are preserved.
func upsertFolder(ctx context.Context, repo folders.Repository, path string) error {
	return repo.Upsert(ctx, &models.Folder{
		Path:       path,
		Name:       models.NameOf(path),
		ParentPath: models.ParentOf(path),
	})
}

// Store persists a new file. The target folder is created on demand and its
// counter incremented in the same transaction as the insert.
func (v *Vault) Store(ctx context.Context, name, mimeType string, payload []byte, folderPath string) (*models.StoredFile, error) {
	if folderPath == "" {
		folderPath = models.DefaultFolderPath
	}

	f := &models.StoredFile{
		ID:         uuid.NewString(),
		Name:       name,
		MimeType:   mimeType,
		SizeBytes:  int64(len(payload)),
		Payload:    payload,
		FolderPath: folderPath,
		UploadedAt: time.Now().UTC(),
	}

	err := dbx.WithTx(ctx, v.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		fr := folders.NewSQLiteRepository(tx)
		if err := upsertFolder(ctx, fr, folderPath); err != nil {
			return err
		}
		if err := files.NewSQLiteRepository(tx).Insert(ctx, f); err != nil {
			return err
		}
		return fr.AdjustFileCount(ctx, folderPath, 1)
	})
	if err != nil {
		v.countUpload(ctx, false)
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	v.countUpload(ctx, true)
	v.record(ctx, activity.KindUpload, name)
	v.log.Info(ctx, "file stored", "id", f.ID, "name", name, "folder", folderPath)
	return f, nil
}

// Get returns a stored file including its payload.
func (v *Vault) Get(ctx context.Context, id string) (*models.StoredFile, error) {
	return files.NewSQLiteRepository(v.db).GetByID(ctx, id)
}

// List returns payload-free metadata for all files, or only the files of
// folderPath when it is non-empty.
func (v *Vault) List(ctx context.Context, folderPath string) ([]models.FileMetadata, error) {
	return files.NewSQLiteRepository(v.db).List(ctx, folderPath)
}

// Remove deletes a file, cascades the deletion of its notes and decrements
// the owning folder's counter, all in one transaction.
func (v *Vault) Remove(ctx context.Context, id string) error {
	var name string
	err := dbx.WithTx(ctx, v.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		fileRepo := files.NewSQLiteRepository(tx)

		f, err := fileRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		name = f.Name

		if _, err := notes.NewSQLiteRepository(tx).DeleteByFileID(ctx, id); err != nil {
			return err
		}
		if err := fileRepo.DeleteByID(ctx, id); err != nil {
			return err
		}
		return folders.NewSQLiteRepository(tx).AdjustFileCount(ctx, f.FolderPath, -1)
	})
	if err != nil {
		return fmt.Errorf("failed to remove file: %w", err)
	}

	v.record(ctx, activity.KindDelete, name)
	return nil
}

// Move reassigns a file to another folder, transferring one unit between the
// two counters in the same transaction. Moving a file onto its current
// folder is a no-op.
func (v *Vault) Move(ctx context.Context, id, newFolderPath string) error {
	if newFolderPath == "" {
		newFolderPath = models.DefaultFolderPath
	}

	var name string
	err := dbx.WithTx(ctx, v.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		fileRepo := files.NewSQLiteRepository(tx)
		folderRepo := folders.NewSQLiteRepository(tx)

		f, err := fileRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		name = f.Name

		if f.FolderPath == newFolderPath {
			return nil
		}

		if err := upsertFolder(ctx, folderRepo, newFolderPath); err != nil {
			return err
		}
		if err := fileRepo.UpdateFolder(ctx, id, newFolderPath); err != nil {
			return err
		}
		if err := folderRepo.AdjustFileCount(ctx, f.FolderPath, -1); err != nil {
			return err
		}
		return folderRepo.AdjustFileCount(ctx, newFolderPath, 1)
	})
	if err != nil {
		return fmt.Errorf("failed to move file: %w", err)
	}

	v.record(ctx, activity.KindMove, name)
	return nil
}

// CreateFolder upserts a folder record. Repeat calls with the same path only
// refresh name and parent metadata.
func (v *Vault) CreateFolder(ctx context.Context, path, name string) (*models.Folder, error) {
	if name == "" {
		name = models.NameOf(path)
	}

	repo := folders.NewSQLiteRepository(v.db)
	err := repo.Upsert(ctx, &models.Folder{
		Path:       path,
		Name:       name,
		ParentPath: models.ParentOf(path),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}
	return repo.GetByPath(ctx, path)
}

// Folders lists all folder records.
func (v *Vault) Folders(ctx context.Context) ([]models.Folder, error) {
	return folders.NewSQLiteRepository(v.db).GetAll(ctx)
}

// DeleteFolder removes a folder after moving every contained file to
// fallbackPath (default folder when empty). The fallback is created on
// demand and its counter raised by the number of moved files, all in the
// same transaction that deletes the folder record.
func (v *Vault) DeleteFolder(ctx context.Context, path, fallbackPath string) error {
	if fallbackPath == "" {
		fallbackPath = models.DefaultFolderPath
	}
	if path == fallbackPath {
		return fmt.Errorf("cannot delete folder %q into itself", path)
	}

	err := dbx.WithTx(ctx, v.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		folderRepo := folders.NewSQLiteRepository(tx)

		if _, err := folderRepo.GetByPath(ctx, path); err != nil {
			return err
		}

		moved, err := files.NewSQLiteRepository(tx).MoveAll(ctx, path, fallbackPath)
		if err != nil {
			return err
		}
		if moved > 0 {
			if err := upsertFolder(ctx, folderRepo, fallbackPath); err != nil {
				return err
			}
			if err := folderRepo.AdjustFileCount(ctx, fallbackPath, moved); err != nil {
				return err
			}
		}
		return folderRepo.DeleteByPath(ctx, path)
	})
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	v.record(ctx, activity.KindFolderDelete, path)
	return nil
}

// Download materializes a stored payload as a file under destDir, named
// after the original upload, and returns the written path.
func (v *Vault) Download(ctx context.Context, id, destDir string) (string, error) {
	f, err := v.Get(ctx, id)
	if err != nil {
		return "", err
	}

	if err := filex.EnsureDir(destDir); err != nil {
		return "", err
	}

	path := filepath.Join(destDir, f.Name)
	if err := os.WriteFile(path, f.Payload, 0o600); err != nil {
		return "", fmt.Errorf("failed to write download: %w", err)
	}

	v.record(ctx, activity.KindDownload, f.Name)
	return path, nil
}

// Stats returns the persisted upload totals.
func (v *Vault) Stats() activity.Stats {
	if v.journal == nil {
		return activity.Stats{}
	}
	return v.journal.Stats()
}

// RecentActivity returns the bounded recent-activity list, newest first.
func (v *Vault) RecentActivity() []activity.Entry {
	if v.journal == nil {
		return nil
	}
	return v.journal.Recent()
}
