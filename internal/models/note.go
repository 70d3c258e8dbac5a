package models

import "time"

// NoteType classifies a note.
type NoteType string

const (
	NoteTypeGeneral    NoteType = "general"
	NoteTypeAnnotation NoteType = "annotation"
	NoteTypeTask       NoteType = "task"
)

// Position is an optional spatial anchor for document-bound annotations.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Note is a structured record, optionally attached to a stored file.
//
// FileID is a weak reference: removing a file through the vault cascades the
// deletion of its notes inside the same transaction, but a note created with
// a dangling FileID is not rejected.
type Note struct {
	ID string

	// FileID links the note to a stored file; empty for free-standing notes.
	FileID string

	Type    NoteType
	Title   string
	Content string
	Tags    []string
	Color   string

	// Position and PageNumber anchor annotation notes inside a document.
	Position   *Position
	PageNumber *int

	// CreatedAt is set once; UpdatedAt is refreshed on every mutation.
	CreatedAt time.Time
	UpdatedAt time.Time
}
