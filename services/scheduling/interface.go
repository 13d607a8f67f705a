package scheduling

import (
	"context"

	reservationRepo "roomify/database/repository/reservation"
	roomRepo "roomify/database/repository/room"
	"roomify/models"

	"go.uber.org/zap"
)

// BookingService turns booking requests into persisted, non-conflicting
// reservation records.
type BookingService interface {
	// TryBook validates the request, expands it into its occurrence series,
	// checks every occurrence against existing reservations, and persists the
	// series atomically. The policy is all-or-nothing: the first conflict
	// anywhere in the series aborts the whole request with no side effects.
	TryBook(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Rooms        roomRepo.Repository
	Reservations reservationRepo.Repository
	Expander     *Expander
	Logger       *zap.Logger

	locks *roomLockStore
}

// NewBookingService wires a DefaultBookingService.
func NewBookingService(rooms roomRepo.Repository, reservations reservationRepo.Repository, expander *Expander, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Rooms:        rooms,
		Reservations: reservations,
		Expander:     expander,
		Logger:       logger,
		locks:        newRoomLockStore(),
	}
}
