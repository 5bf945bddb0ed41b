package service

import "errors"

// Sentinel errors the handlers translate into HTTP status codes.
// Conflict and not-found come back wrapped with a human-readable message.
var (
	ErrConflict           = errors.New("conflict")
	ErrUnknownEmail       = errors.New("no account registered for this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("not allowed")
	ErrCancelWindowClosed = errors.New("booking can no longer be cancelled")
	ErrInvalidTransition  = errors.New("booking status transition not allowed")
)
