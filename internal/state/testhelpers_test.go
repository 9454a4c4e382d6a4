package state

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"testing"

	fsutil "github.com/kk-code-lab/rnav/internal/fs"
)

// fakeLister serves canned listings and counts how often each path is read.
type fakeLister struct {
	dirs  map[string][]string
	fail  map[string]error
	calls map[string]int
}

func newFakeLister(dirs map[string][]string) *fakeLister {
	return &fakeLister{
		dirs:  dirs,
		fail:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (l *fakeLister) List(path string) ([]string, error) {
	l.calls[path]++
	if err, ok := l.fail[path]; ok {
		return nil, err
	}
	raw, ok := l.dirs[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return append([]string(nil), raw...), nil
}

func (l *fakeLister) totalCalls() int {
	total := 0
	for _, n := range l.calls {
		total += n
	}
	return total
}

var errPermission = errors.New("permission denied")

func homeTree() map[string][]string {
	return map[string][]string{
		"/":                        {"home/", "etc/"},
		"/home":                    {"user/", "guest/"},
		"/home/user":               {"notes.txt", "projects/", "run.sh*", "apple", "application"},
		"/home/user/projects":      {"rnav/", "README.md"},
		"/home/user/projects/rnav": {"go.mod", "main.go"},
		"/home/guest":              {},
		"/etc":                     {"hosts"},
	}
}

func mustSession(t *testing.T, r *StateReducer, path string) *Session {
	t.Helper()
	s, err := r.NewSession(path)
	if err != nil {
		t.Fatalf("NewSession(%q) failed: %v", path, err)
	}
	return s
}

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fixture paths are unix style")
	}
}

func osListerForTest() fsutil.Lister {
	return fsutil.NewOSLister(false, nil)
}
