// File: database/repository/room/interface.go
package roomRepo

import (
	"context"
	"errors"

	"roomify/models"
)

// ErrNotFound is returned when no room matches the given id.
var ErrNotFound = errors.New("room not found")

// ErrReferenced is returned when a non-cascading delete targets a room that
// still has reservations.
var ErrReferenced = errors.New("room has existing reservations")

// Repository defines persistence operations for rooms.
type Repository interface {
	Create(ctx context.Context, room *models.Room) (*models.Room, error)
	Update(ctx context.Context, room *models.Room) (*models.Room, error)
	GetByID(ctx context.Context, id string) (*models.Room, error)
	// GetByName returns the room with the given name, or nil when absent.
	// Used for the uniqueness check on create and update.
	GetByName(ctx context.Context, name string) (*models.Room, error)
	List(ctx context.Context) ([]models.Room, error)
	Count(ctx context.Context) (int64, error)
	// Delete removes a room. Without cascade it fails with ErrReferenced while
	// any reservation references the room; with cascade it deletes the
	// dependent reservations in the same transaction.
	Delete(ctx context.Context, id string, cascade bool) error
	EnsureIndexes() error
}
