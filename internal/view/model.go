// Package view derives renderer-agnostic drawing instructions from a session.
// Nothing here performs I/O or keeps state between calls.
package view

import (
	"strings"

	fsutil "github.com/kk-code-lab/rnav/internal/fs"
	search "github.com/kk-code-lab/rnav/internal/search"
	statepkg "github.com/kk-code-lab/rnav/internal/state"
)

// Tag is the visual treatment a renderer applies to one entry line.
type Tag int

const (
	TagFile Tag = iota
	TagSelectedFile
	TagDirectory
	TagSelectedDirectory
)

func (t Tag) String() string {
	switch t {
	case TagSelectedFile:
		return "selected-file"
	case TagDirectory:
		return "directory"
	case TagSelectedDirectory:
		return "selected-directory"
	default:
		return "file"
	}
}

// Line is one visible entry.
type Line struct {
	Name     string
	Kind     fsutil.Kind
	Selected bool
	Matches  []search.MatchSpan // rune ranges of Name matched by the query
}

// Tag folds kind and selection into the four render treatments. Executables
// are drawn like files; Kind stays available for finer styling.
func (l Line) Tag() Tag {
	dir := l.Kind == fsutil.KindDirectory
	switch {
	case dir && l.Selected:
		return TagSelectedDirectory
	case dir:
		return TagDirectory
	case l.Selected:
		return TagSelectedFile
	default:
		return TagFile
	}
}

// Label is the name with its listing marker ("src/", "run.sh*").
func (l Line) Label() string {
	return l.Name + l.Kind.Marker()
}

// Model is everything a renderer needs for one frame.
type Model struct {
	Status       string
	Query        string
	Lines        []Line
	Selected     int // 0-based index into Lines, -1 when Lines is empty
	Notice       string
	HistoryDepth int
}

// Build maps the session's current view into render instructions.
func Build(s *statepkg.Session) Model {
	if s == nil {
		return Model{Selected: -1}
	}

	rows := s.Rows()
	lines := make([]Line, len(rows))
	selected := -1
	for i, row := range rows {
		isSelected := i+1 == s.SelectionIndex
		if isSelected {
			selected = i
		}
		lines[i] = Line{
			Name:     row.Entry.Name,
			Kind:     row.Entry.Kind,
			Selected: isSelected,
			Matches:  search.SpansFromPositions(row.Positions),
		}
	}

	notice := ""
	if s.LastError != nil {
		notice = s.LastError.Error()
	}

	return Model{
		Status:       StatusLine(s.CurrentPath, s.Query),
		Query:        s.Query,
		Lines:        lines,
		Selected:     selected,
		Notice:       notice,
		HistoryDepth: len(s.HistoryStack),
	}
}

// StatusLine renders "<path>/<query>"; the root does not double its slash.
func StatusLine(path, query string) string {
	if strings.HasSuffix(path, "/") {
		return path + query
	}
	return path + "/" + query
}
