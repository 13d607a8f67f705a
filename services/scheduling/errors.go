package scheduling

import (
	"fmt"
	"time"

	"roomify/models"
)

// ValidationError reports a malformed or rule-violating booking input. It is
// always detected before any write is attempted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports that an occurrence of the requested series overlaps an
// existing reservation. Under the all-or-nothing policy the whole request is
// aborted with zero side effects.
type ConflictError struct {
	// Occurrence is the zero-based index of the conflicting occurrence in the
	// expanded series.
	Occurrence int
	Start      time.Time
	End        time.Time
	// Existing is the persisted reservation the occurrence collides with.
	Existing models.Reservation
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"occurrence %d (%s - %s) conflicts with existing reservation %q (%s - %s)",
		e.Occurrence+1,
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339),
		e.Existing.MeetingName,
		e.Existing.StartTime.Format(time.RFC3339), e.Existing.EndTime.Format(time.RFC3339),
	)
}

// NotFoundError reports an absent room or reservation.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// StorageError wraps a persistence failure. It is surfaced as an internal
// error and never retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
