package scheduling

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reservationRepo "roomify/database/repository/reservation"
	roomRepo "roomify/database/repository/room"
	"roomify/models"
)

// fakeRoomRepo is an in-memory roomRepo.Repository.
type fakeRoomRepo struct {
	rooms map[string]models.Room
}

func newFakeRoomRepo(rooms ...models.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: make(map[string]models.Room)}
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return f
}

func (f *fakeRoomRepo) Create(_ context.Context, room *models.Room) (*models.Room, error) {
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	f.rooms[room.ID] = *room
	return room, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *models.Room) (*models.Room, error) {
	if _, ok := f.rooms[room.ID]; !ok {
		return nil, roomRepo.ErrNotFound
	}
	f.rooms[room.ID] = *room
	return room, nil
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id string) (*models.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, roomRepo.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRoomRepo) GetByName(_ context.Context, name string) (*models.Room, error) {
	for _, r := range f.rooms {
		if r.Name == name {
			room := r
			return &room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) List(context.Context) ([]models.Room, error) {
	out := make([]models.Room, 0, len(f.rooms))
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRoomRepo) Count(context.Context) (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id string, _ bool) error {
	if _, ok := f.rooms[id]; !ok {
		return roomRepo.ErrNotFound
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) EnsureIndexes() error { return nil }

// fakeReservationRepo is an in-memory reservationRepo.Repository that reuses
// the overlap predicate for its conflict query.
type fakeReservationRepo struct {
	stored []models.Reservation
}

func (f *fakeReservationRepo) FindConflicting(_ context.Context, roomID string, start, end time.Time) (*models.Reservation, error) {
	for _, r := range f.stored {
		if Overlaps(roomID, start, end, r.RoomID, r.StartTime, r.EndTime) {
			res := r
			return &res, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) Persist(_ context.Context, res *models.Reservation) (*models.Reservation, error) {
	res.ID = uuid.New().String()
	res.CreatedAt = time.Now()
	f.stored = append(f.stored, *res)
	return res, nil
}

func (f *fakeReservationRepo) PersistBatch(_ context.Context, batch []models.Reservation) ([]models.Reservation, error) {
	now := time.Now()
	for i := range batch {
		batch[i].ID = uuid.New().String()
		batch[i].CreatedAt = now
	}
	f.stored = append(f.stored, batch...)
	return batch, nil
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	for _, r := range f.stored {
		if r.ID == id {
			res := r
			return &res, nil
		}
	}
	return nil, reservationRepo.ErrNotFound
}

func (f *fakeReservationRepo) List(context.Context, reservationRepo.ListFilter) ([]models.ReservationWithRoom, error) {
	out := make([]models.ReservationWithRoom, len(f.stored))
	for i, r := range f.stored {
		out[i] = models.ReservationWithRoom{Reservation: r}
	}
	return out, nil
}

func (f *fakeReservationRepo) DeleteByID(_ context.Context, id string) error {
	for i, r := range f.stored {
		if r.ID == id {
			f.stored = append(f.stored[:i], f.stored[i+1:]...)
			return nil
		}
	}
	return reservationRepo.ErrNotFound
}

func (f *fakeReservationRepo) DeleteEndedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var kept []models.Reservation
	var deleted int64
	for _, r := range f.stored {
		if r.EndTime.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.stored = kept
	return deleted, nil
}

func (f *fakeReservationRepo) EnsureIndexes() error { return nil }

func newTestService(rooms *fakeRoomRepo, reservations *fakeReservationRepo) *DefaultBookingService {
	return NewBookingService(rooms, reservations, NewExpander(kst), zap.NewNop())
}

func TestTryBookSingle(t *testing.T) {
	rooms := newFakeRoomRepo(models.Room{ID: "r1", Name: "Seminar Room A", Location: "1F", Capacity: 20})
	reservations := &fakeReservationRepo{}
	svc := newTestService(rooms, reservations)

	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)
	req := testRequest(start, start.Add(time.Hour), models.RepeatNone)

	result, err := svc.TryBook(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Reservations, 1)

	got := result.Reservations[0]
	assert.NotEmpty(t, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "r1", got.RoomID)
	assert.Equal(t, "Hong Gildong", got.UserName)
	assert.Equal(t, "010-1234-5678", got.Contact)
	assert.Equal(t, "Team meeting", got.MeetingName)
}

func TestTryBookAdjacentSucceeds(t *testing.T) {
	rooms := newFakeRoomRepo(models.Room{ID: "r1", Name: "Seminar Room A"})
	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)
	reservations := &fakeReservationRepo{stored: []models.Reservation{{
		ID: "existing", RoomID: "r1", MeetingName: "Standup",
		StartTime: start, EndTime: start.Add(time.Hour),
	}}}
	svc := newTestService(rooms, reservations)

	// [10:00, 11:00) directly after [09:00, 10:00) must not conflict.
	req := testRequest(start.Add(time.Hour), start.Add(2*time.Hour), models.RepeatNone)
	result, err := svc.TryBook(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, result.Reservations, 1)
	assert.Len(t, reservations.stored, 2)
}

func TestTryBookOverlapFails(t *testing.T) {
	rooms := newFakeRoomRepo(models.Room{ID: "r1", Name: "Seminar Room A"})
	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)
	reservations := &fakeReservationRepo{stored: []models.Reservation{{
		ID: "existing", RoomID: "r1", MeetingName: "Standup",
		StartTime: start, EndTime: start.Add(time.Hour),
	}}}
	svc := newTestService(rooms, reservations)

	req := testRequest(start.Add(30*time.Minute), start.Add(90*time.Minute), models.RepeatNone)
	_, err := svc.TryBook(context.Background(), req)
	require.Error(t, err)

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 0, cerr.Occurrence)
	assert.Equal(t, "existing", cerr.Existing.ID)
	assert.True(t, cerr.Existing.StartTime.Equal(start))
	assert.Len(t, reservations.stored, 1, "no new reservation may be persisted")
}

func TestTryBookSeriesAllOrNothing(t *testing.T) {
	rooms := newFakeRoomRepo(models.Room{ID: "r1", Name: "Seminar Room A"})
	base := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)

	// Occurrence 3 of 5 (index 2, April 3rd) is already taken.
	blocker := models.Reservation{
		ID: "blocker", RoomID: "r1", MeetingName: "Offsite",
		StartTime: time.Date(2024, 4, 3, 9, 30, 0, 0, kst),
		EndTime:   time.Date(2024, 4, 3, 10, 30, 0, 0, kst),
	}
	reservations := &fakeReservationRepo{stored: []models.Reservation{blocker}}
	svc := newTestService(rooms, reservations)

	req := testRequest(base, base.Add(time.Hour), models.RepeatWeekly)
	req.RepeatCount = 5

	_, err := svc.TryBook(context.Background(), req)
	require.Error(t, err)

	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, 2, cerr.Occurrence)
	assert.Equal(t, "blocker", cerr.Existing.ID)
	assert.Len(t, reservations.stored, 1, "the whole series must be aborted")
}

func TestTryBookWeeklySeriesPersistsAll(t *testing.T) {
	rooms := newFakeRoomRepo(models.Room{ID: "r1", Name: "Seminar Room A"})
	reservations := &fakeReservationRepo{}
	svc := newTestService(rooms, reservations)

	base := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)
	req := testRequest(base, base.Add(time.Hour), models.RepeatWeekly)
	req.RepeatCount = 3

	result, err := svc.TryBook(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Reservations, 3)
	for i, r := range result.Reservations {
		assert.NotEmpty(t, r.ID)
		assert.Equal(t, "Team meeting", r.MeetingName, "occurrence %d keeps request metadata", i)
	}
	assert.Len(t, reservations.stored, 3)
}

func TestTryBookUnknownRoom(t *testing.T) {
	svc := newTestService(newFakeRoomRepo(), &fakeReservationRepo{})

	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)
	req := testRequest(start, start.Add(time.Hour), models.RepeatNone)
	req.RoomID = "missing"

	_, err := svc.TryBook(context.Background(), req)
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, "room", nferr.Resource)
}

func TestTryBookValidation(t *testing.T) {
	rooms := newFakeRoomRepo(models.Room{ID: "r1", Name: "Seminar Room A"})
	reservations := &fakeReservationRepo{}
	svc := newTestService(rooms, reservations)

	start := time.Date(2024, 3, 20, 9, 0, 0, 0, kst)

	tests := []struct {
		name   string
		mutate func(*models.BookingRequest)
	}{
		{"missing user name", func(r *models.BookingRequest) { r.UserName = " " }},
		{"missing contact", func(r *models.BookingRequest) { r.Contact = "" }},
		{"missing meeting name", func(r *models.BookingRequest) { r.MeetingName = "" }},
		{"end before start", func(r *models.BookingRequest) { r.EndTime = r.StartTime.Add(-time.Minute) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest(start, start.Add(time.Hour), models.RepeatNone)
			tt.mutate(&req)

			_, err := svc.TryBook(context.Background(), req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Empty(t, reservations.stored)
		})
	}
}
