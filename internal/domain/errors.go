package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the caller's token was missing, expired or rejected.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict indicates the operation is not legal in the current state.
	ErrConflict = errors.New("conflict")
	// ErrInvalid indicates the request payload was rejected.
	ErrInvalid = errors.New("invalid data")
)

// InvalidDataError carries the rejection message extracted from an upstream
// 400 response so it can be surfaced to the user verbatim.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string {
	if e.Message == "" {
		return "invalid data"
	}
	return e.Message
}

func (e *InvalidDataError) Unwrap() error { return ErrInvalid }
