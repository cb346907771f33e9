// Package session owns the in-memory document being edited: a closed set of
// mutation operations over one resume document, bounded undo/redo history,
// and debounced autosave into the document store.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// defaultDebounce is how long a burst of edits settles before autosave
	// writes.
	defaultDebounce = time.Second
	// saveTimeout bounds background autosave writes.
	saveTimeout = 10 * time.Second
	// maxUndoDepth caps the undo stack; the oldest snapshot is evicted first.
	maxUndoDepth = 20
)

// Session is the single owner of the currently edited document. All methods
// are safe for concurrent use; the autosave timer fires on its own goroutine.
type Session struct {
	st  store.Store
	log *zap.Logger

	debounce time.Duration

	mu         sync.Mutex
	resume     *types.ResumeDocument
	settings   types.ResumeSettings
	allResumes []types.ResumeDocument
	isLoading  bool
	isSaving   bool
	lastSaved  time.Time
	undoStack  []*types.ResumeDocument
	redoStack  []*types.ResumeDocument
	saveTimer  *time.Timer
	closed     bool
}

// Option configures a Session.
type Option func(*Session)

// WithDebounce overrides the autosave debounce interval. Tests use short
// intervals.
func WithDebounce(d time.Duration) Option {
	return func(s *Session) { s.debounce = d }
}

// New creates a Session over the given store. The session starts in the
// loading state; call Init to resolve the initial document.
func New(st store.Store, log *zap.Logger, opts ...Option) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		st:        st,
		log:       log,
		debounce:  defaultDebounce,
		settings:  types.DefaultSettings(),
		isLoading: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init fetches settings, the document list and the current-document pointer
// concurrently, then resolves the document to edit: the pointed-at document
// if it exists, else the most recently updated one, else a freshly
// synthesized empty document which is persisted and made current. Init always
// leaves the session usable; store failures are logged, not fatal.
func (s *Session) Init(ctx context.Context) {
	var (
		settings  = types.DefaultSettings()
		resumes   []types.ResumeDocument
		currentID string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.st.GetSettings(gctx)
		if err == nil {
			settings = st
		}
		return err
	})
	g.Go(func() error {
		var err error
		resumes, err = s.st.GetAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		currentID, err = s.st.GetCurrentID(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("session initialization fetch failed, continuing with defaults", zap.Error(err))
	}

	doc := s.resolveDocument(ctx, resumes, currentID)
	if doc == nil {
		doc = types.NewDocument()
		if err := s.st.Save(ctx, doc); err != nil {
			s.log.Warn("failed to persist new resume", zap.Error(err))
		}
		if err := s.st.SetCurrentID(ctx, doc.ID); err != nil {
			s.log.Warn("failed to set current resume", zap.Error(err))
		}
		resumes = []types.ResumeDocument{*doc.Clone()}
	}

	s.mu.Lock()
	s.settings = settings
	s.allResumes = resumes
	s.resume = doc
	s.isLoading = false
	s.mu.Unlock()
}

// resolveDocument picks the document to load from the fetched state, or nil
// when a new one must be synthesized.
func (s *Session) resolveDocument(ctx context.Context, resumes []types.ResumeDocument, currentID string) *types.ResumeDocument {
	if currentID != "" {
		for _, r := range resumes {
			if r.ID != currentID {
				continue
			}
			doc, err := s.st.Get(ctx, currentID)
			if err != nil {
				s.log.Warn("failed to load current resume", zap.String("id", currentID), zap.Error(err))
				break
			}
			if doc != nil {
				return doc
			}
		}
	}

	if len(resumes) > 0 {
		doc := resumes[0].Clone()
		if err := s.st.SetCurrentID(ctx, doc.ID); err != nil {
			s.log.Warn("failed to set current resume", zap.String("id", doc.ID), zap.Error(err))
		}
		return doc
	}

	return nil
}

// Close cancels any pending autosave timer. In-flight store writes are
// allowed to finish; new ones are not scheduled.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
}

// Resume returns a snapshot of the current document.
func (s *Session) Resume() *types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resume.Clone()
}

// Settings returns the current settings.
func (s *Session) Settings() types.ResumeSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// AllResumes returns the cached document list.
func (s *Session) AllResumes() []types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.ResumeDocument(nil), s.allResumes...)
}

// IsLoading reports whether Init has completed.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isLoading
}

// IsSaving reports whether a save is pending or in flight.
func (s *Session) IsSaving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isSaving
}

// LastSaved returns the time of the last successful save, or the zero time.
func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// LoadResume switches the session to another stored document and makes it
// current. A missing id is a no-op; store failures are returned.
func (s *Session) LoadResume(ctx context.Context, id string) error {
	doc, err := s.st.Get(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		s.log.Debug("load skipped, resume not found", zap.String("id", id))
		return nil
	}
	if err := s.st.SetCurrentID(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.resume = doc
	s.redoStack = nil
	s.scheduleAutosaveLocked()
	s.mu.Unlock()
	return nil
}

// CreateNew synthesizes a fresh empty document, persists it, makes it current
// and switches the session to it.
func (s *Session) CreateNew(ctx context.Context) (*types.ResumeDocument, error) {
	doc := types.NewDocument()
	if err := s.st.Save(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.st.SetCurrentID(ctx, doc.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.resume = doc
	s.redoStack = nil
	s.mu.Unlock()

	if err := s.RefreshResumes(ctx); err != nil {
		s.log.Warn("failed to refresh resume list", zap.Error(err))
	}
	return doc.Clone(), nil
}

// UpdateSettings applies a partial settings update and persists the result.
func (s *Session) UpdateSettings(ctx context.Context, update func(*types.ResumeSettings)) error {
	s.mu.Lock()
	settings := s.settings
	update(&settings)
	s.settings = settings
	s.mu.Unlock()

	return s.st.SaveSettings(ctx, settings)
}

// RefreshResumes reloads the cached document list from the store.
func (s *Session) RefreshResumes(ctx context.Context) error {
	resumes, err := s.st.GetAll(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.allResumes = resumes
	s.mu.Unlock()
	return nil
}

// SaveCurrentResume writes the current document immediately, bypassing the
// autosave debounce. Failures are returned so the UI can report them.
func (s *Session) SaveCurrentResume(ctx context.Context) error {
	s.mu.Lock()
	if s.resume == nil {
		s.mu.Unlock()
		return nil
	}
	s.isSaving = true
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
	doc := s.resume.Clone()
	s.mu.Unlock()

	err := s.st.Save(ctx, doc)

	s.mu.Lock()
	s.isSaving = false
	if err == nil {
		s.lastSaved = time.Now()
		if s.resume != nil && s.resume.ID == doc.ID && doc.UpdatedAt.After(s.resume.UpdatedAt) {
			s.resume.UpdatedAt = doc.UpdatedAt
		}
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if err := s.RefreshResumes(ctx); err != nil {
		s.log.Warn("failed to refresh resume list", zap.Error(err))
	}
	return nil
}
