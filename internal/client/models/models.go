// Package models defines the client-side user and note types and the
// translation between them and the backend wire schema.
package models

import (
	"fmt"
	"time"
)

// User is the authenticated account as the client sees it. The JSON tags
// match the backend's user representation, which is also the shape the
// session store persists.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
}

// Note is the client-side note. CreatedAt never changes after creation;
// UpdatedAt moves forward only when an update succeeds on the server.
type Note struct {
	ID        string
	Title     string
	Content   string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteWire is the backend representation of a note. The body field is named
// "texto" on the wire and Content on the client; that rename happens here
// and nowhere else.
type NoteWire struct {
	ID        string `json:"id"`
	Title     string `json:"titulo"`
	Text      string `json:"texto"`
	OwnerID   string `json:"usuario_id"`
	CreatedAt string `json:"fecha_creacion"`
	UpdatedAt string `json:"fecha_actualizacion"`
}

// ToNote converts a wire note to the client shape. Missing timestamps map to
// the zero time; malformed ones are an error.
func (w NoteWire) ToNote() (Note, error) {
	createdAt, err := parseWireTime(w.CreatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("note %s: bad fecha_creacion: %w", w.ID, err)
	}
	updatedAt, err := parseWireTime(w.UpdatedAt)
	if err != nil {
		return Note{}, fmt.Errorf("note %s: bad fecha_actualizacion: %w", w.ID, err)
	}
	return Note{
		ID:        w.ID,
		Title:     w.Title,
		Content:   w.Text,
		OwnerID:   w.OwnerID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// CreateNoteRequest is the outgoing payload for note creation.
type CreateNoteRequest struct {
	Title string `json:"titulo"`
	Text  string `json:"texto"`
}

// NewCreateNoteRequest builds the wire payload from client fields,
// applying the Content -> texto rename.
func NewCreateNoteRequest(title, content string) CreateNoteRequest {
	return CreateNoteRequest{Title: title, Text: content}
}

// UpdateNoteRequest is the outgoing payload for a partial note update.
// Nil fields are omitted entirely so the server never sees an accidental
// empty-string overwrite.
type UpdateNoteRequest struct {
	Title *string `json:"titulo,omitempty"`
	Text  *string `json:"texto,omitempty"`
}

// NewUpdateNoteRequest builds the wire payload from optional client fields,
// applying the Content -> texto rename only when content is present.
func NewUpdateNoteRequest(title, content *string) UpdateNoteRequest {
	return UpdateNoteRequest{Title: title, Text: content}
}

func parseWireTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}
