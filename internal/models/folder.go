package models

import "strings"

// Folder groups stored files under a hierarchical, slash-delimited path.
//
// FileCount is a denormalized counter maintained transactionally alongside
// file inserts, moves and deletes. After every committed transaction it must
// equal the number of StoredFile records whose FolderPath equals Path.
type Folder struct {
	// Path is the unique key, e.g. "/Papers/Drafts".
	Path string

	// Name is the display name, normally the last path segment.
	Name string

	// ParentPath is Path with the last segment stripped; "" for top-level
	// folders.
	ParentPath string

	// FileCount is the number of files currently assigned to this folder.
	FileCount int64
}

// ParentOf returns the parent of a slash-delimited folder path, or "" when
// the path is top-level.
func ParentOf(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx <= 0 {
		return ""
	}
	return trimmed[:idx]
}

// NameOf returns the last segment of a slash-delimited folder path.
func NameOf(path string) string {
	trimmed := strings.TrimSuffix(path, "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return trimmed
	}
	return trimmed[idx+1:]
}
