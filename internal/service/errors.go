package service

import "errors"

// Sentinel errors shared by all services. Handlers map these onto HTTP
// status codes; everything else is treated as an internal error.
var (
	ErrNotFound    = errors.New("record not found")
	ErrValidation  = errors.New("validation failed")
	ErrFetchFailed = errors.New("record store unreachable")
	ErrForbidden   = errors.New("not allowed")
	ErrConflict    = errors.New("conflicting request")
)
