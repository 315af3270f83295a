package errs

import "errors"

// Category markers shared by the domain and usecase layers
var (
	// Record-level precondition failures (empty names, bad formats, negative amounts)
	ErrValidation = errors.New("validation error")

	// Domain rule violations surfaced by commands
	ErrDomainValidation = errors.New("domain validation failed")

	// Lookups
	ErrNotFound = errors.New("not found")

	// Outbound collaborators
	ErrCollaboratorFailed = errors.New("collaborator call failed")
)
