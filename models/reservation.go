package models

import "time"

// Reservation represents a persisted booking of a room for a half-open
// interval [StartTime, EndTime).
type Reservation struct {
	ID          string    `bson:"id" json:"id"`                   // Unique reservation identifier (UUID)
	RoomID      string    `bson:"roomId" json:"roomId"`           // Room being reserved
	UserName    string    `bson:"userName" json:"userName"`       // Requester display name
	Contact     string    `bson:"contact" json:"contact"`         // Requester contact (phone or email)
	MeetingName string    `bson:"meetingName" json:"meetingName"` // Meeting title
	StartTime   time.Time `bson:"startTime" json:"startTime"`
	EndTime     time.Time `bson:"endTime" json:"endTime"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ReservationWithRoom is a reservation joined with its room document, as
// returned by the listing endpoint.
type ReservationWithRoom struct {
	Reservation `bson:",inline"`
	Room        *Room `bson:"room,omitempty" json:"room,omitempty"`
}
