package data

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Entry represents the index metadata for a single item in the content tree.
// This separates the item's identity and placement from whatever payload the
// host keeps elsewhere; the index only ever sees these five fields.
//
// Entries handed to the index are shared, mutable objects. The index stores
// the pointers it is given and returns those same pointers from queries, so
// an in-place merge is visible to every holder. Callers that want to change
// an entry they obtained from a query must not mutate it directly; they
// build a fresh Entry (Clone is the easy way) and push it back through
// Update so the indexes move with it.
type Entry struct {
	// Identity - unique, never reassigned
	ID uuid.UUID `json:"id"`

	// ID of the parent entry (uuid.Nil marks a tree root)
	ParentID uuid.UUID `json:"parent_id"`

	// Path of the parent entry
	ParentPath string `json:"parent_path"`

	// Full hierarchical path, slash-separated
	// Not guaranteed unique; conflicting siblings may share one
	Path string `json:"path"`

	// ID of the template describing this entry's type
	TemplateID uuid.UUID `json:"template_id"`
}

// Merge copies the mutable fields of incoming onto e, field by field,
// and reports whether anything actually changed. Comparisons are exact,
// so a case-only path rename still counts as a change.
// ID is identity and is never overwritten; merging entries with
// different IDs fails with ErrIDMismatch.
func (e *Entry) Merge(incoming *Entry) (bool, error) {
	if incoming == nil {
		return false, ErrNilEntry
	}

	if incoming.ID != e.ID {
		return false, fmt.Errorf("%w: %s != %s", ErrIDMismatch, e.ID, incoming.ID)
	}

	// Use a dedicated value to check if any
	// modification to the target has been done
	modified := false

	if e.ParentID != incoming.ParentID {
		e.ParentID = incoming.ParentID
		modified = true
	}

	if e.ParentPath != incoming.ParentPath {
		e.ParentPath = incoming.ParentPath
		modified = true
	}

	if e.Path != incoming.Path {
		e.Path = incoming.Path
		modified = true
	}

	if e.TemplateID != incoming.TemplateID {
		e.TemplateID = incoming.TemplateID
		modified = true
	}

	return modified, nil
}

// IsRoot returns true if this entry sits at the top of a tree.
func (e *Entry) IsRoot() bool {
	return e.ParentID == uuid.Nil
}

// Clone creates a shallow copy of the entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	return &clone
}

// Marshal provides JSON serialization for Entry.
func (e *Entry) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Unmarshal provides JSON deserialization for Entry.
func (e *Entry) Unmarshal(data []byte) error {
	return json.Unmarshal(data, e)
}
