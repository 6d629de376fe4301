package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Loaders and stateful components
// return these (optionally wrapped) so services can translate them into domain
// errors.
//
// These represent factual states, not validation failures:
// - ErrNotFound: a requested resource (rendered map, year) does not exist
// - ErrInvalidState: a component is in the wrong state for the requested operation
// - ErrUnavailable: an upstream source could not be read
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
