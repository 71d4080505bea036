package entity

import "errors"

// Domain errors
var (
	// Idea errors
	ErrIdeaNotFound = errors.New("idea not found")
	ErrInvalidIdea  = errors.New("invalid idea data")

	// Generative pipeline errors
	ErrNotConfigured    = errors.New("generative service credential is not configured")
	ErrGenerationFailed = errors.New("generative service request failed")
	ErrMalformedOutput  = errors.New("generative output is malformed")
	ErrNoValidations    = errors.New("no validations yet")

	// Submission errors
	ErrIncompleteSubmission = errors.New("submission is incomplete")
	ErrAlreadyValidated     = errors.New("idea already validated by this user")

	// Store constraint classification. The raw driver message is logged,
	// never shown to the caller.
	ErrSchemaMissing       = errors.New("database tables not found")
	ErrInvalidReference    = errors.New("invalid idea or user reference")
	ErrAccessDenied        = errors.New("permission denied by access policy")
	ErrDuplicateValidation = errors.New("duplicate validation")
	ErrStoreUnclassified   = errors.New("store operation failed")

	// Auth errors
	ErrUnauthorized  = errors.New("missing or invalid session token")
	ErrSessionDenied = errors.New("session rejected by auth service")

	// Request validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
