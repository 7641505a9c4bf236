package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally
// wrapped) and the evidence service translates them into domain error codes.
//
//   - ErrNotFound: record does not exist in the store
//   - ErrConflict: optimistic update lost too many races
//   - ErrUnavailable: backing store or sink cannot be reached
//
// Bad input is not a sentinel; use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("unavailable")
)
