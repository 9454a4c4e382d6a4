//go:build !windows

package fs

import "os"

// IsHidden reports dotfiles as hidden on Unix-like systems.
func IsHidden(_ string, name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// ShouldHideFromListing is a no-op on non-Windows platforms.
func ShouldHideFromListing(_, _ string) bool {
	return false
}

func isExecutable(_ string, mode os.FileMode) bool {
	return mode.IsRegular() && mode.Perm()&0o111 != 0
}
