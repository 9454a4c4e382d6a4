//go:build windows

package fs

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

const (
	fileAttributeHidden       = 0x02
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

var executableExts = map[string]bool{
	".exe": true,
	".bat": true,
	".cmd": true,
	".com": true,
	".ps1": true,
}

func fileAttributes(fullPath, name string) (uint32, error) {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, os.ErrInvalid
	}
	ptr, err := syscall.UTF16PtrFromString(target)
	if err != nil {
		return 0, err
	}
	return syscall.GetFileAttributes(ptr)
}

// IsHidden honours the Windows hidden attribute, falling back to the dotfile rule.
func IsHidden(fullPath string, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&fileAttributeHidden != 0
}

// ShouldHideFromListing drops protected system junctions (e.g. "Application Data")
// even when hidden entries are shown.
func ShouldHideFromListing(fullPath, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	const protectedMask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&protectedMask == protectedMask
}

func isExecutable(name string, mode os.FileMode) bool {
	if !mode.IsRegular() {
		return false
	}
	return executableExts[strings.ToLower(filepath.Ext(name))]
}
