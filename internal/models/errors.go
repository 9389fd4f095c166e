package models

import "errors"

var (
	// ErrValidation marks a rejected form submission: a required field is empty or malformed.
	ErrValidation = errors.New("validation error")
	// ErrNotFoundOrForeign marks a task that does not exist or belongs to another user.
	ErrNotFoundOrForeign = errors.New("task not found")
	// ErrInvalidFilter marks an unrecognised filter mode.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrStoreUnavailable marks a failure of the backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrUnknownAction marks a transport event that maps to no action.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInstallationNotFound is returned when no credentials exist for a team.
	ErrInstallationNotFound = errors.New("no installation found")
)
