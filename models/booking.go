package models

import "time"

// RepeatType enumerates the supported recurrence modes for a booking request.
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
)

// Valid reports whether the repeat type is one of the supported modes.
func (r RepeatType) Valid() bool {
	switch r {
	case RepeatNone, RepeatWeekly, RepeatMonthly:
		return true
	}
	return false
}

// BookingRequest is the transient input to the booking service. Exactly one
// repeat bound is set for recurring requests: RepeatCount (number of
// occurrences, the first included) or RepeatUntil (generate while the
// occurrence start does not pass it).
type BookingRequest struct {
	RoomID      string
	UserName    string
	Contact     string
	MeetingName string
	StartTime   time.Time
	EndTime     time.Time
	Repeat      RepeatType
	RepeatCount int
	RepeatUntil *time.Time
}

// BookingResult carries the reservations persisted for one booking request,
// in occurrence order.
type BookingResult struct {
	Reservations []Reservation `json:"reservations"`
}
