package state

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitAndJoinPath(t *testing.T) {
	skipOnWindows(t)
	tests := []struct {
		path     string
		root     string
		segments []string
	}{
		{path: "/", root: "/", segments: nil},
		{path: "/home", root: "/", segments: []string{"home"}},
		{path: "/home/user", root: "/", segments: []string{"home", "user"}},
		{path: "/home//user/", root: "/", segments: []string{"home", "user"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			root, segments := splitPath(tt.path)
			if root != tt.root || !reflect.DeepEqual(segments, tt.segments) {
				t.Fatalf("splitPath(%q) = %q %v", tt.path, root, segments)
			}
		})
	}

	if got := joinPath("/", nil); got != "/" {
		t.Fatalf("expected root, got %q", got)
	}
	if got := joinPath("/", []string{"a", "b"}); got != "/a/b" {
		t.Fatalf("expected /a/b, got %q", got)
	}
}

func TestChildPath(t *testing.T) {
	if got := childPath("/", "etc"); got != "/etc" {
		t.Fatalf("expected /etc, got %q", got)
	}
	if got := childPath("/home", "user"); got != "/home/user" {
		t.Fatalf("expected /home/user, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	skipOnWindows(t)
	got, err := NormalizePath("/home/user/../user/")
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if got != "/home/user" {
		t.Fatalf("expected /home/user, got %q", got)
	}

	cwd, err := NormalizePath("")
	if err != nil {
		t.Fatalf("normalize cwd failed: %v", err)
	}
	if !filepath.IsAbs(filepath.FromSlash(cwd)) {
		t.Fatalf("expected absolute cwd, got %q", cwd)
	}
}
