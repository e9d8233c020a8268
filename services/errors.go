package services

import "errors"

// Failure taxonomy surfaced to handlers. Each maps to exactly one HTTP status.
var (
	// ErrKPINotFound: the referenced KPI definition does not exist.
	ErrKPINotFound = errors.New("KPI definition not found")
	// ErrUpdateNotFound: the referenced submission does not exist.
	ErrUpdateNotFound = errors.New("KPI update not found")
	// ErrUnitMismatch: the submission's unit slug does not match the
	// definition's owning unit. Treated as a cross-tenant write attempt.
	ErrUnitMismatch = errors.New("unit slug does not match KPI definition")
	// ErrInvalidStatus: review status outside {approved, rejected}.
	ErrInvalidStatus = errors.New("status must be 'approved' or 'rejected'")
	// ErrAlreadyReviewed: the submission was already decided and re-review
	// is not enabled.
	ErrAlreadyReviewed = errors.New("KPI update has already been reviewed")
)
