// File: database/repository/reservation/aggregates.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"roomify/models"
)

// List joins each reservation with its room via $lookup so the client can
// render room details without a second round trip.
func (r *mongoReservationRepo) List(ctx context.Context, filter ListFilter) ([]models.ReservationWithRoom, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	match := bson.M{}
	if filter.RoomID != "" {
		match["roomId"] = filter.RoomID
	}
	if filter.Day != nil {
		dayStart := time.Date(filter.Day.Year(), filter.Day.Month(), filter.Day.Day(), 0, 0, 0, 0, filter.Day.Location())
		match["startTime"] = bson.M{
			"$gte": dayStart,
			"$lt":  dayStart.AddDate(0, 0, 1),
		}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.M{"startTime": 1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "rooms",
			"localField":   "roomId",
			"foreignField": "id",
			"as":           "room",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$room",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.ReservationWithRoom
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return out, nil
}
