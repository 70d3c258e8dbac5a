// Package models defines the persisted domain types of the vault:
// stored files, folders, notes and the encryption key pair.
package models

import "time"

// DefaultFolderPath is the fallback folder used when no target is given and
// when a deleted folder's files need a new home.
const DefaultFolderPath = "/General"

// StoredFile is a binary file kept in the vault together with its metadata.
// Payload bytes are owned exclusively by the store record.
type StoredFile struct {
	// ID is a generated identifier, unique and immutable once created.
	ID string

	// Name is the original file name captured at upload time.
	Name string

	// MimeType is the declared content type captured at upload time.
	MimeType string

	// SizeBytes is the payload length captured at upload time.
	SizeBytes int64

	// Payload holds the raw binary content.
	Payload []byte

	// FolderPath is the logical grouping the file belongs to. Mutable:
	// files can be moved between folders.
	FolderPath string

	// UploadedAt is the creation timestamp in UTC, immutable.
	UploadedAt time.Time
}

// FileMetadata is the payload-free projection of a StoredFile returned by
// list operations.
type FileMetadata struct {
	ID         string
	Name       string
	MimeType   string
	SizeBytes  int64
	FolderPath string
	UploadedAt time.Time
}

// Metadata returns the payload-free projection of f.
func (f *StoredFile) Metadata() FileMetadata {
	return FileMetadata{
		ID:         f.ID,
		Name:       f.Name,
		MimeType:   f.MimeType,
		SizeBytes:  f.SizeBytes,
		FolderPath: f.FolderPath,
		UploadedAt: f.UploadedAt,
	}
}
