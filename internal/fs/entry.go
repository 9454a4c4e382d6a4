package fs

import "strings"

// Kind classifies a listed entry.
type Kind int

const (
	KindFile Kind = iota
	KindDirectory
	KindExecutable
)

const (
	dirMarker  = '/'
	execMarker = '*'
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindExecutable:
		return "executable"
	default:
		return "file"
	}
}

// Marker returns the listing suffix for the kind, or "" for plain files.
func (k Kind) Marker() string {
	switch k {
	case KindDirectory:
		return string(dirMarker)
	case KindExecutable:
		return string(execMarker)
	default:
		return ""
	}
}

// Entry is a single item of a directory listing. Name never carries the marker.
type Entry struct {
	Name string
	Kind Kind
}

// IsDir reports whether the entry can be descended into.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Raw renders the entry back into the listing form ("name/", "name*", "name").
func (e Entry) Raw() string {
	return e.Name + e.Kind.Marker()
}

// ParseEntry decodes one raw listing line using the suffix convention:
// a trailing "/" is a directory, a trailing "*" an executable, anything else a file.
func ParseEntry(raw string) Entry {
	if n := len(raw); n > 0 {
		switch raw[n-1] {
		case dirMarker:
			return Entry{Name: strings.TrimSuffix(raw, string(dirMarker)), Kind: KindDirectory}
		case execMarker:
			return Entry{Name: strings.TrimSuffix(raw, string(execMarker)), Kind: KindExecutable}
		}
	}
	return Entry{Name: raw, Kind: KindFile}
}

// ParseEntries decodes a listing, keeping order and duplicates.
func ParseEntries(raw []string) []Entry {
	entries := make([]Entry, 0, len(raw))
	for _, line := range raw {
		entries = append(entries, ParseEntry(line))
	}
	return entries
}

// Names returns the entry names in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
