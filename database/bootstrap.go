package database

import (
	"context"
	"fmt"

	"roomify/models"
)

// roomSeeder is the subset of the room repository interface needed for
// seeding. It is declared locally (satisfied structurally by
// roomify/database/repository/room.Repository) to avoid an import cycle:
// the repository package imports this package for Collection().
type roomSeeder interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, room *models.Room) (*models.Room, error)
}

var defaultRooms = []models.Room{
	{Name: "Seminar Room A", Location: "1F", Capacity: 20, Facilities: []string{"projector", "whiteboard", "audio system"}},
	{Name: "Seminar Room B", Location: "2F", Capacity: 15, Facilities: []string{"projector", "whiteboard"}},
	{Name: "Seminar Room C", Location: "3F", Capacity: 10, Facilities: []string{"whiteboard"}},
	{Name: "Main Hall", Location: "2F", Capacity: 100},
	{Name: "Basement Prayer Room", Location: "B1", Capacity: 20},
}

// SeedDefaultRooms inserts the default room set when the rooms collection is
// empty. It is an explicit, idempotent bootstrap step: callers decide whether
// and when to run it, and a non-empty collection is left untouched.
func SeedDefaultRooms(ctx context.Context, rooms roomSeeder) (int, error) {
	n, err := rooms.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms before seeding: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	created := 0
	for i := range defaultRooms {
		room := defaultRooms[i]
		if _, err := rooms.Create(ctx, &room); err != nil {
			return created, fmt.Errorf("failed to seed room %q: %w", room.Name, err)
		}
		created++
	}
	return created, nil
}
