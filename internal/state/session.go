package state

import (
	fsutil "github.com/kk-code-lab/rnav/internal/fs"
	search "github.com/kk-code-lab/rnav/internal/search"
)

// FileEntry mirrors fs.Entry so UI code can rely on a stable type.
type FileEntry = fsutil.Entry

// Row is a visible entry together with the rune positions the query matched.
type Row struct {
	Entry     FileEntry
	Positions []int
}

// Session is the single source of truth for one navigation run.
type Session struct {
	// Navigation & filesystem
	CurrentPath  string
	RawEntries   []FileEntry // Listing of CurrentPath, fetched once per path
	HistoryStack []string    // Segments left behind by ascending, top at the end

	// Filtering & selection
	Query          string
	SelectionIndex int // 1-based into Visible()

	// Outcome
	PendingTarget string
	Done          bool
	Cancelled     bool

	// Error state
	LastError error
}

// Rows recomputes the filtered, ordered view of RawEntries for Query.
func (s *Session) Rows() []Row {
	names := fsutil.Names(s.RawEntries)
	order := search.Rank(names, s.Query)
	rows := make([]Row, len(order))
	for i, idx := range order {
		positions, _ := search.Match(names[idx], s.Query)
		rows[i] = Row{Entry: s.RawEntries[idx], Positions: positions}
	}
	return rows
}

// Visible returns the entries kept by the current query, in display order.
func (s *Session) Visible() []FileEntry {
	rows := s.Rows()
	entries := make([]FileEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.Entry
	}
	return entries
}

// Selected returns the entry under the cursor, if any.
func (s *Session) Selected() (FileEntry, bool) {
	visible := s.Visible()
	if s.SelectionIndex < 1 || s.SelectionIndex > len(visible) {
		return FileEntry{}, false
	}
	return visible[s.SelectionIndex-1], true
}

// SelectedPath is the absolute path of the entry under the cursor, or "".
func (s *Session) SelectedPath() string {
	entry, ok := s.Selected()
	if !ok {
		return ""
	}
	return childPath(s.CurrentPath, entry.Name)
}

// lastIndex is the highest valid SelectionIndex.
func (s *Session) lastIndex() int {
	return max(1, len(s.Visible()))
}

// wrapSelection applies the circular policy: below 1 goes to the last entry,
// past the last entry goes back to 1.
func (s *Session) wrapSelection(requested int) int {
	last := s.lastIndex()
	switch {
	case requested < 1:
		return last
	case requested > last:
		return 1
	default:
		return requested
	}
}

// enterDirectory applies a completed directory change in one step.
func (s *Session) enterDirectory(path string, entries []FileEntry, history []string) {
	s.CurrentPath = path
	s.RawEntries = entries
	s.HistoryStack = history
	s.Query = ""
	s.SelectionIndex = 1
}
