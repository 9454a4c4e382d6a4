package fs

import (
	"fmt"

	"github.com/gobwas/glob"
)

// IgnoreSet matches entry names against user supplied glob patterns.
type IgnoreSet struct {
	patterns []string
	globs    []glob.Glob
}

// CompileIgnore compiles each pattern; the first invalid one aborts.
func CompileIgnore(patterns []string) (*IgnoreSet, error) {
	set := &IgnoreSet{}
	for _, p := range patterns {
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
		set.patterns = append(set.patterns, p)
		set.globs = append(set.globs, g)
	}
	return set, nil
}

// Match reports whether name is covered by any pattern. A nil set matches nothing.
func (s *IgnoreSet) Match(name string) bool {
	if s == nil {
		return false
	}
	for _, g := range s.globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Patterns returns the compiled source patterns.
func (s *IgnoreSet) Patterns() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.patterns...)
}
