package scheduling

import (
	"context"
	"errors"
	"strings"

	roomRepo "roomify/database/repository/room"
	"roomify/models"

	"go.uber.org/zap"
)

// TryBook implements the booking flow: validate, resolve the room, expand the
// recurrence, check every occurrence for conflicts, and persist the series as
// one atomic batch.
func (s *DefaultBookingService) TryBook(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	if err := validateRequestFields(req); err != nil {
		return nil, err
	}

	room, err := s.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrNotFound) {
			return nil, &NotFoundError{Resource: "room", ID: req.RoomID}
		}
		return nil, &StorageError{Op: "room lookup", Err: err}
	}

	// The conflict check and the batch insert must not interleave with another
	// request for the same room.
	lock := s.locks.get(room.ID)
	lock.Lock()
	defer lock.Unlock()

	intervals, err := s.Expander.Expand(req)
	if err != nil {
		return nil, err
	}

	for i, iv := range intervals {
		existing, err := s.Reservations.FindConflicting(ctx, room.ID, iv.Start, iv.End)
		if err != nil {
			return nil, &StorageError{Op: "conflict check", Err: err}
		}
		if existing != nil {
			return nil, &ConflictError{
				Occurrence: i,
				Start:      iv.Start,
				End:        iv.End,
				Existing:   *existing,
			}
		}
	}

	batch := make([]models.Reservation, len(intervals))
	for i, iv := range intervals {
		batch[i] = models.Reservation{
			RoomID:      room.ID,
			UserName:    req.UserName,
			Contact:     req.Contact,
			MeetingName: req.MeetingName,
			StartTime:   iv.Start,
			EndTime:     iv.End,
		}
	}

	var persisted []models.Reservation
	if len(batch) == 1 {
		res, err := s.Reservations.Persist(ctx, &batch[0])
		if err != nil {
			return nil, &StorageError{Op: "reservation insert", Err: err}
		}
		persisted = []models.Reservation{*res}
	} else {
		persisted, err = s.Reservations.PersistBatch(ctx, batch)
		if err != nil {
			return nil, &StorageError{Op: "reservation batch insert", Err: err}
		}
	}

	s.Logger.Info("booked reservation series",
		zap.String("roomId", room.ID),
		zap.String("meetingName", req.MeetingName),
		zap.Int("occurrences", len(persisted)),
	)
	return &models.BookingResult{Reservations: persisted}, nil
}

func validateRequestFields(req models.BookingRequest) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return newValidationError("roomId", "is required")
	}
	if strings.TrimSpace(req.UserName) == "" {
		return newValidationError("userName", "is required")
	}
	if strings.TrimSpace(req.Contact) == "" {
		return newValidationError("contact", "is required")
	}
	if strings.TrimSpace(req.MeetingName) == "" {
		return newValidationError("meetingName", "is required")
	}
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return newValidationError("", "startTime and endTime are required")
	}
	return nil
}
