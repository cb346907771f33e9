// Package memory provides an in-memory document store. It backs the session
// tests and the CLI's --in-memory mode, mirroring the semantics of the
// PostgreSQL store exactly.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

// Store keeps documents, settings and the current pointer in maps. Safe for
// concurrent use.
type Store struct {
	mu        sync.Mutex
	resumes   map[string]*types.ResumeDocument
	settings  *types.ResumeSettings
	currentID string
	saveCalls int
	failSaves bool
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{resumes: make(map[string]*types.ResumeDocument)}
}

// FailSaves makes every subsequent Save return an error. Used to exercise
// error propagation paths in tests.
func (s *Store) FailSaves(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSaves = fail
}

// SaveCount reports how many Save calls have been made. Autosave tests assert
// on it to verify debouncing.
func (s *Store) SaveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveCalls
}

// Save upserts a clone of the document, stamping UpdatedAt.
func (s *Store) Save(_ context.Context, doc *types.ResumeDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failSaves {
		return fmt.Errorf("save resume %s: store unavailable", doc.ID)
	}

	s.saveCalls++
	doc.Touch()
	s.resumes[doc.ID] = doc.Clone()
	return nil
}

// Get returns a clone of the stored document, or (nil, nil) when absent.
func (s *Store) Get(_ context.Context, id string) (*types.ResumeDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumes[id].Clone(), nil
}

// GetAll returns clones of every document ordered by UpdatedAt descending.
func (s *Store) GetAll(_ context.Context) ([]types.ResumeDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]types.ResumeDocument, 0, len(s.resumes))
	for _, doc := range s.resumes {
		docs = append(docs, *doc.Clone())
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UpdatedAt.After(docs[j].UpdatedAt)
	})
	return docs, nil
}

// Delete removes a document. Absent ids are not an error.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resumes, id)
	return nil
}

// Duplicate copies an existing document under a fresh id and persists it.
func (s *Store) Duplicate(ctx context.Context, id string) (*types.ResumeDocument, error) {
	s.mu.Lock()
	original := s.resumes[id].Clone()
	s.mu.Unlock()

	if original == nil {
		return nil, fmt.Errorf("duplicate %s: %w", id, store.ErrNotFound)
	}

	dup := store.DuplicateOf(original)
	if err := s.Save(ctx, dup); err != nil {
		return nil, err
	}
	return dup, nil
}

// SaveSettings stores the settings singleton.
func (s *Store) SaveSettings(_ context.Context, settings types.ResumeSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

// GetSettings returns the stored settings, or the defaults when none exist.
func (s *Store) GetSettings(_ context.Context) (types.ResumeSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return types.DefaultSettings(), nil
	}
	return *s.settings, nil
}

// SetCurrentID records the active document pointer.
func (s *Store) SetCurrentID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentID = id
	return nil
}

// GetCurrentID returns the active document pointer, or "" when unset.
func (s *Store) GetCurrentID(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentID, nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() {}
