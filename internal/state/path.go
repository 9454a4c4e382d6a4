package state

import (
	"fmt"
	"path/filepath"
	"strings"
)

// NormalizePath turns any user supplied directory into the session form:
// absolute, slash separated, no trailing separator except for the root itself.
func NormalizePath(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	root, segments := splitPath(filepath.ToSlash(abs))
	return joinPath(root, segments), nil
}

// splitPath separates the root prefix ("/" or "C:/") from the path segments.
func splitPath(path string) (string, []string) {
	volume := filepath.VolumeName(filepath.FromSlash(path))
	rest := strings.TrimPrefix(path, volume)
	root := volume + "/"

	var segments []string
	for _, seg := range strings.Split(rest, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return root, segments
}

func joinPath(root string, segments []string) string {
	return root + strings.Join(segments, "/")
}

// childPath appends one segment to a session path.
func childPath(path, name string) string {
	if strings.HasSuffix(path, "/") {
		return path + name
	}
	return path + "/" + name
}
