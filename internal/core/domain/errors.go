package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown provider or output mode.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrNoContent indicates a run produced no document: either no file
	// passed the inclusion filter or every batch came back empty.
	// Callers report it as a warning, not a failure banner.
	ErrNoContent = errors.New("no content produced")

	// Repository Errors.

	// ErrRepositoryAccess indicates the repository itself could not be read.
	// It is always fatal for a scan and wraps the underlying cause.
	ErrRepositoryAccess = errors.New("repository access failed")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// Authentication Errors.

	// ErrAuthRequired indicates no credential was supplied.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the supplied credential was rejected.
	ErrAuthInvalid = errors.New("authentication invalid")

	// ErrAccessDenied indicates the credential lacks permission for the resource.
	ErrAccessDenied = errors.New("access denied")
)
