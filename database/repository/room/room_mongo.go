// File: database/repository/room/room_mongo.go
package roomRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"roomify/database"
	"roomify/models"
)

type mongoRoomRepo struct {
	coll            *mongo.Collection
	reservationColl *mongo.Collection
}

// NewMongoRoomRepo returns a Repository backed by the rooms collection.
func NewMongoRoomRepo() Repository {
	return &mongoRoomRepo{
		coll:            database.Collection("rooms"),
		reservationColl: database.Collection("reservations"),
	}
}

func (r *mongoRoomRepo) Create(ctx context.Context, room *models.Room) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to insert room: %w", err)
	}
	return room, nil
}

func (r *mongoRoomRepo) Update(ctx context.Context, room *models.Room) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       room.Name,
		"location":   room.Location,
		"capacity":   room.Capacity,
		"facilities": room.Facilities,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": room.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return room, nil
}

func (r *mongoRoomRepo) GetByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room: %w", err)
	}
	return &room, nil
}

func (r *mongoRoomRepo) GetByName(ctx context.Context, name string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room by name: %w", err)
	}
	return &room, nil
}

func (r *mongoRoomRepo) List(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (r *mongoRoomRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return n, nil
}

func (r *mongoRoomRepo) Delete(ctx context.Context, id string, cascade bool) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if !cascade {
		n, err := r.reservationColl.CountDocuments(ctx, bson.M{"roomId": id})
		if err != nil {
			return fmt.Errorf("failed to check room references: %w", err)
		}
		if n > 0 {
			return ErrReferenced
		}
		res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
		if err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}
		if res.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	}

	// Cascade: remove dependent reservations and the room as one unit.
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.reservationColl.DeleteMany(sc, bson.M{"roomId": id}); err != nil {
			return fmt.Errorf("delete dependent reservations failed: %w", err)
		}
		res, err := r.coll.DeleteOne(sc, bson.M{"id": id})
		if err != nil {
			return fmt.Errorf("delete room failed: %w", err)
		}
		if res.DeletedCount == 0 {
			return ErrNotFound
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
