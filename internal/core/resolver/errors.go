package resolver

import "errors"

// The four terminal outcomes a combination request can fail with. Callers
// branch with errors.Is; the HTTP layer maps each to its own status and
// user-facing message.
var (
	// ErrMissingInput: an id is absent or non-positive. Rejected before any
	// store access.
	ErrMissingInput = errors.New("missing input element")

	// ErrElementNotFound: an input id does not resolve to a stored element.
	ErrElementNotFound = errors.New("element not found")

	// ErrSynthesisFailed: the model was unreachable or returned something
	// that does not validate. Never retried here.
	ErrSynthesisFailed = errors.New("synthesis failed")

	// ErrStorageFailed: a store read or the element insert failed. Recipe
	// insert failures are deliberately not surfaced this way.
	ErrStorageFailed = errors.New("storage failed")
)
