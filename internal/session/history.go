package session

// PushUndo snapshots the current document onto the undo stack. Callers push
// once per logical edit session (not per keystroke) so undo granularity stays
// usable. The stack is capped: pushing past the limit evicts the oldest
// snapshot.
func (s *Session) PushUndo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resume == nil {
		return
	}
	if len(s.undoStack) >= maxUndoDepth {
		s.undoStack = s.undoStack[len(s.undoStack)-maxUndoDepth+1:]
	}
	s.undoStack = append(s.undoStack, s.resume.Clone())
}

// Undo restores the most recent snapshot, moving the replaced document onto
// the redo stack. A no-op when the undo stack is empty.
func (s *Session) Undo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.undoStack) == 0 || s.resume == nil {
		return
	}
	top := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.redoStack = append(s.redoStack, s.resume)
	s.resume = top
	s.scheduleAutosaveLocked()
}

// Redo reverses the most recent Undo. A no-op when the redo stack is empty.
func (s *Session) Redo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.redoStack) == 0 || s.resume == nil {
		return
	}
	top := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.undoStack = append(s.undoStack, s.resume)
	s.resume = top
	s.scheduleAutosaveLocked()
}

// CanUndo reports whether an undo snapshot is available.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undoStack) > 0
}

// CanRedo reports whether a redo snapshot is available.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redoStack) > 0
}
