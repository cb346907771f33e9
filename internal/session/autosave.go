package session

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// scheduleAutosaveLocked marks the session as saving and (re)starts the
// debounce timer. A new change supersedes the pending timer rather than
// queuing a second write, so one change burst produces one store write.
// Callers hold s.mu.
func (s *Session) scheduleAutosaveLocked() {
	if s.closed {
		return
	}
	s.isSaving = true
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(s.debounce, s.autosave)
}

// autosave runs when the debounce timer fires: persist the current snapshot,
// refresh the cached document list and stamp lastSaved. Failures are logged;
// autosave never surfaces errors to the editing flow.
func (s *Session) autosave() {
	s.mu.Lock()
	if s.closed || s.resume == nil {
		s.mu.Unlock()
		return
	}
	doc := s.resume.Clone()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := s.st.Save(ctx, doc); err != nil {
		s.log.Warn("autosave failed", zap.String("id", doc.ID), zap.Error(err))
		s.mu.Lock()
		s.isSaving = false
		s.mu.Unlock()
		return
	}

	resumes, err := s.st.GetAll(ctx)
	if err != nil {
		s.log.Warn("failed to refresh resume list after autosave", zap.Error(err))
	}

	s.mu.Lock()
	if err == nil {
		s.allResumes = resumes
	}
	if s.resume != nil && s.resume.ID == doc.ID && doc.UpdatedAt.After(s.resume.UpdatedAt) {
		s.resume.UpdatedAt = doc.UpdatedAt
	}
	s.lastSaved = time.Now()
	s.isSaving = false
	s.mu.Unlock()
}
