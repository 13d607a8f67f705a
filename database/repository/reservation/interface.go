// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"
	"time"

	"roomify/models"
)

// ErrNotFound is returned when no reservation matches the given id.
var ErrNotFound = errors.New("reservation not found")

// ListFilter narrows the reservation listing. Zero values mean no filtering.
type ListFilter struct {
	RoomID string
	// Day restricts results to reservations starting on this calendar day,
	// evaluated in the Day value's location.
	Day *time.Time
}

// Repository defines persistence operations for reservations.
type Repository interface {
	// FindConflicting returns any persisted reservation for the room whose
	// half-open interval overlaps [start, end), or nil when none exists.
	FindConflicting(ctx context.Context, roomID string, start, end time.Time) (*models.Reservation, error)
	// Persist stores a single reservation, assigning its id and creation
	// timestamp.
	Persist(ctx context.Context, res *models.Reservation) (*models.Reservation, error)
	// PersistBatch stores a series atomically: either every reservation is
	// inserted or none is.
	PersistBatch(ctx context.Context, batch []models.Reservation) ([]models.Reservation, error)
	GetByID(ctx context.Context, id string) (*models.Reservation, error)
	// List returns reservations joined with their room documents.
	List(ctx context.Context, filter ListFilter) ([]models.ReservationWithRoom, error)
	DeleteByID(ctx context.Context, id string) error
	// DeleteEndedBefore removes reservations whose end time precedes the
	// cutoff and reports how many were deleted.
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	EnsureIndexes() error
}
