// Package apperr defines the error categories every handler maps to an
// HTTP status. Lower layers wrap these with fmt.Errorf("...: %w", ...) so
// callers can classify with errors.Is while keeping context in the message.
package apperr

import "errors"

var (
	// ErrInvalidInput indicates a missing or malformed required field (400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthenticated indicates a missing or invalid session (401).
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden indicates an authenticated caller that is not the owner,
	// or has the wrong role (403).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound indicates the target resource does not exist (404).
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates a uniqueness violation (409).
	ErrConflict = errors.New("conflict")
	// ErrUploadFailed indicates the image host rejected or failed an upload.
	ErrUploadFailed = errors.New("upload failed")
)
