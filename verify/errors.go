package verify

import "errors"

var (
	// ErrPreconditionTimeout reports an element the scenario depends on
	// that did not become visible within its wait window.
	ErrPreconditionTimeout = errors.New("precondition timeout")

	// ErrNavigationFailure reports that the target URL could not be loaded.
	ErrNavigationFailure = errors.New("navigation failure")
)
