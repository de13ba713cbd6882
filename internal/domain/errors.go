package domain

import "errors"

// Failure categories surfaced by the repository and command layers.
// Callers distinguish them with errors.Is.
var (
	// ErrValidation marks caller-recoverable input failures: malformed
	// fields, report text too short, and the like.
	ErrValidation = errors.New("validation failed")

	// ErrPermission marks authorization failures: the caller's role does
	// not permit the operation.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound is returned when the target article or report no longer
	// exists, typically because another admin resolved it first. Callers
	// should treat it as "already handled".
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned by registration when the username
	// is already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrDuplicateReport is returned when a user already holds a report
	// on the article. Resubmission is rejected, never merged.
	ErrDuplicateReport = errors.New("report already exists for this user and article")

	// ErrIntegrity marks a storage constraint breach. Distinct from
	// ErrValidation: it means a caller bypassed validation.
	ErrIntegrity = errors.New("storage integrity violation")
)
