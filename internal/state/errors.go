package state

import (
	"errors"
	"fmt"
)

var (
	// ErrListingUnavailable is matched by every listing failure.
	ErrListingUnavailable = errors.New("directory listing unavailable")
	// ErrNoSelection means the transition had nothing valid to act on.
	ErrNoSelection = errors.New("nothing to act on")
	// ErrAtRoot means ascend was requested with no parent segment left.
	ErrAtRoot = errors.New("already at the filesystem root")
)

// ListingError wraps the provider failure for a path. The session that produced
// it still points at its previous directory.
type ListingError struct {
	Path string
	Err  error
}

func (e *ListingError) Error() string {
	return fmt.Sprintf("cannot list %s: %v", e.Path, e.Err)
}

func (e *ListingError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrListingUnavailable) match any ListingError.
func (e *ListingError) Is(target error) bool {
	return target == ErrListingUnavailable
}

// IsBell reports errors that only warrant an audible "nothing to do".
func IsBell(err error) bool {
	return errors.Is(err, ErrNoSelection) || errors.Is(err, ErrAtRoot)
}
