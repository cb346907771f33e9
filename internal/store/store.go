// Package store defines the durable persistence contract for resume
// documents, the settings singleton and the current-document pointer.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// ErrNotFound is returned by operations that require an existing document,
// such as Duplicate. Plain reads report absence as a nil document instead.
var ErrNotFound = errors.New("resume not found")

// CurrentKey is the fixed key under which the active document pointer is
// persisted.
const CurrentKey = "currentResumeId"

// SettingsID is the discriminator under which the settings singleton is
// persisted.
const SettingsID = "default"

// Store is the durable key-value layer behind the document session. All
// writes are last-write-wins keyed by document id; Save stamps UpdatedAt
// regardless of the caller-supplied value.
type Store interface {
	// Save upserts a document, stamping its UpdatedAt to now.
	Save(ctx context.Context, doc *types.ResumeDocument) error
	// Get returns the document with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*types.ResumeDocument, error)
	// GetAll returns all documents ordered by UpdatedAt descending.
	GetAll(ctx context.Context) ([]types.ResumeDocument, error)
	// Delete removes a document. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
	// Duplicate deep-copies an existing document under a fresh id with a
	// " (Copy)" name suffix and fresh timestamps, persists it and returns it.
	// Returns ErrNotFound when the source id is absent.
	Duplicate(ctx context.Context, id string) (*types.ResumeDocument, error)

	// SaveSettings upserts the settings singleton.
	SaveSettings(ctx context.Context, settings types.ResumeSettings) error
	// GetSettings returns the stored settings, or the defaults when absent.
	GetSettings(ctx context.Context) (types.ResumeSettings, error)

	// SetCurrentID records the active document pointer.
	SetCurrentID(ctx context.Context, id string) error
	// GetCurrentID returns the active document pointer, or "" when unset.
	GetCurrentID(ctx context.Context) (string, error)

	// Close releases the underlying connection handle.
	Close()
}

// DuplicateOf builds the copy Duplicate persists: fresh id, suffixed name,
// fresh timestamps, otherwise field-equal content. Shared by implementations.
func DuplicateOf(original *types.ResumeDocument) *types.ResumeDocument {
	dup := original.Clone()
	dup.ID = uuid.NewString()
	dup.Name = original.Name + " (Copy)"
	now := time.Now()
	dup.CreatedAt = now
	dup.UpdatedAt = now
	return dup
}
