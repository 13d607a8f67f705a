package models

// Room represents a bookable meeting room.
type Room struct {
	ID         string   `bson:"id" json:"id"`                                 // Unique room identifier (UUID)
	Name       string   `bson:"name" json:"name"`                             // Display name, unique across rooms
	Location   string   `bson:"location" json:"location"`                     // Floor or building location
	Capacity   int      `bson:"capacity" json:"capacity"`                     // Seating capacity
	Facilities []string `bson:"facilities,omitempty" json:"facilities,omitempty"` // Optional equipment list (projector, whiteboard, ...)
}
