package common

import "errors"

// Callers should match these values with errors.Is.
var (
	// ErrNotFound covers both a missing metadata key and a 404 from the
	// server.
	ErrNotFound = errors.New("not found")

	// Workflow precondition errors. These are raised locally, before any
	// request is sent to the server.
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotCancellable   = errors.New("transfer is no longer cancellable")
	ErrTrackAlreadySet  = errors.New("approval track already resolved")
	ErrNoTeamAssigned   = errors.New("no team assigned to current user")
	ErrWrongTeam        = errors.New("transfer belongs to another team")
	ErrWrongLiga        = errors.New("transfer belongs to another league")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrValidation       = errors.New("validation failed")
)
