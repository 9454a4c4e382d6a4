package state

import (
	"fmt"
	"io"
	"path/filepath"

	fsutil "github.com/kk-code-lab/rnav/internal/fs"
	"github.com/sirupsen/logrus"
)

// StateReducer applies actions to a Session. It owns the listing provider, so
// every directory fetch goes through one place.
type StateReducer struct {
	lister fsutil.Lister
	log    logrus.FieldLogger
}

// NewStateReducer creates a reducer. A nil logger discards output.
func NewStateReducer(lister fsutil.Lister, log logrus.FieldLogger) *StateReducer {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &StateReducer{lister: lister, log: log}
}

// NewSession starts a navigation run at path and performs its first listing.
func (r *StateReducer) NewSession(path string) (*Session, error) {
	dirPath, err := NormalizePath(path)
	if err != nil {
		return nil, err
	}
	entries, err := r.fetch(dirPath)
	if err != nil {
		return nil, err
	}

	s := &Session{}
	s.enterDirectory(dirPath, entries, nil)
	r.log.WithFields(logrus.Fields{"path": dirPath, "entries": len(entries)}).Info("session started")
	return s, nil
}

// Reduce applies an action to the session. Transitions either apply fully or
// leave the session untouched and return an error; the error (or nil) is
// recorded in LastError either way.
func (r *StateReducer) Reduce(s *Session, action Action) error {
	if s == nil || s.Done {
		return nil
	}

	err := r.reduce(s, action)
	s.LastError = err

	fields := logrus.Fields{
		"action":    fmt.Sprintf("%T", action),
		"path":      s.CurrentPath,
		"query":     s.Query,
		"selection": s.SelectionIndex,
	}
	switch {
	case err == nil:
		r.log.WithFields(fields).Debug("reduced")
	case IsBell(err):
		r.log.WithFields(fields).WithError(err).Debug("no-op")
	default:
		r.log.WithFields(fields).WithError(err).Warn("transition failed")
	}
	return err
}

func (r *StateReducer) reduce(s *Session, action Action) error {
	switch a := action.(type) {

	// ===== QUERY =====

	case QueryChangedAction:
		s.Query = a.Query
		s.SelectionIndex = s.wrapSelection(s.SelectionIndex)
		return nil

	// ===== SELECTION =====

	case MoveSelectionAction:
		s.SelectionIndex = s.wrapSelection(s.SelectionIndex + a.Offset)
		return nil

	case JumpFirstAction:
		s.SelectionIndex = 1
		return nil

	case JumpLastAction:
		s.SelectionIndex = s.lastIndex()
		return nil

	// ===== NAVIGATION =====

	case CommitAction:
		entry, ok := s.Selected()
		if !ok {
			return ErrNoSelection
		}

		target := childPath(s.CurrentPath, entry.Name)
		if !entry.IsDir() {
			s.PendingTarget = target
			s.Done = true
			return nil
		}

		// Forward navigation drops whatever could have been re-descended.
		entries, err := r.fetch(target)
		if err != nil {
			return err
		}
		s.enterDirectory(target, entries, nil)
		return nil

	case AscendAction:
		root, segments := splitPath(s.CurrentPath)
		if len(segments) == 0 {
			return ErrAtRoot
		}

		last := segments[len(segments)-1]
		parent := joinPath(root, segments[:len(segments)-1])
		entries, err := r.fetch(parent)
		if err != nil {
			return err
		}

		history := append(append([]string(nil), s.HistoryStack...), last)
		s.enterDirectory(parent, entries, history)
		return nil

	case DescendHistoryAction:
		depth := len(s.HistoryStack)
		if depth == 0 {
			return ErrNoSelection
		}

		target := childPath(s.CurrentPath, s.HistoryStack[depth-1])
		entries, err := r.fetch(target)
		if err != nil {
			return err
		}

		history := append([]string(nil), s.HistoryStack[:depth-1]...)
		s.enterDirectory(target, entries, history)
		return nil

	case CancelAction:
		s.PendingTarget = ""
		s.Cancelled = true
		s.Done = true
		return nil
	}

	return nil
}

// fetch asks the provider for a listing exactly once per directory change.
func (r *StateReducer) fetch(path string) ([]FileEntry, error) {
	if r.lister == nil {
		return nil, &ListingError{Path: path, Err: fmt.Errorf("no listing provider")}
	}
	raw, err := r.lister.List(filepath.FromSlash(path))
	if err != nil {
		return nil, &ListingError{Path: path, Err: err}
	}
	return fsutil.ParseEntries(raw), nil
}
