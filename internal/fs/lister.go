package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/text/unicode/norm"
)

// Lister produces the raw listing of a directory: one name per entry, suffixed
// with "/" for directories and "*" for executables.
type Lister interface {
	List(path string) ([]string, error)
}

// ListerFunc adapts a plain function to the Lister interface.
type ListerFunc func(path string) ([]string, error)

// List calls f(path).
func (f ListerFunc) List(path string) ([]string, error) {
	return f(path)
}

// OSLister lists directories from the local filesystem.
type OSLister struct {
	ShowHidden bool
	Ignore     *IgnoreSet
}

// NewOSLister builds a lister hiding dotfiles unless showHidden is set.
func NewOSLister(showHidden bool, ignore *IgnoreSet) *OSLister {
	return &OSLister{ShowHidden: showHidden, Ignore: ignore}
}

// List reads path and returns the raw names in directory order (sorted by name).
func (l *OSLister) List(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", path, err)
	}

	raw := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		fullPath := filepath.Join(path, name)

		if ShouldHideFromListing(fullPath, name) {
			continue
		}
		if !l.ShowHidden && IsHidden(fullPath, name) {
			continue
		}
		if l.Ignore.Match(name) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}

		kind := KindFile
		switch {
		case info.IsDir():
			kind = KindDirectory
		case info.Mode()&os.ModeSymlink != 0:
			// Follow the link so linked directories can be descended into.
			target, err := os.Stat(fullPath)
			if err != nil {
				break
			}
			if target.IsDir() {
				kind = KindDirectory
			} else if isExecutable(name, target.Mode()) {
				kind = KindExecutable
			}
		case isExecutable(name, info.Mode()):
			kind = KindExecutable
		}

		entry := Entry{Name: displayName(name), Kind: kind}
		raw = append(raw, entry.Raw())
	}
	return raw, nil
}

// displayName composes decomposed names on macOS, where the filesystem hands
// out NFD but resolves either form. Elsewhere the bytes are the identity of
// the file and stay untouched.
func displayName(name string) string {
	if runtime.GOOS == "darwin" {
		return norm.NFC.String(name)
	}
	return name
}
