// File: database/repository/reservation/reservation_mongo.go
package reservationRepo

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

type mongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo returns a Repository backed by the reservations collection.
func NewMongoReservationRepo() Repository {
	return &mongoReservationRepo{coll: database.Collection("reservations")}
}

func (r *mongoReservationRepo) FindConflicting(ctx context.Context, roomID string, start, end time.Time) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Half-open interval intersection: existing.start < end AND existing.end > start.
	filter := bson.M{
		"roomId":    roomID,
		"startTime": bson.M{"$lt": end},
		"endTime":   bson.M{"$gt": start},
	}

	var res models.Reservation
	err := r.coll.FindOne(ctx, filter).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicting reservation: %w", err)
	}
	return &res, nil
}

func (r *mongoReservationRepo) Persist(ctx context.Context, res *models.Reservation) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}
	return res, nil
}

func (r *mongoReservationRepo) PersistBatch(ctx context.Context, batch []models.Reservation) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(batch))
	for i := range batch {
		if batch[i].ID == "" {
			batch[i].ID = uuid.New().String()
		}
		if batch[i].CreatedAt.IsZero() {
			batch[i].CreatedAt = now
		}
		docs[i] = batch[i]
	}

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if _, err := r.coll.InsertMany(sc, docs); err != nil {
			_ = sc.AbortTransaction(sc)
			return fmt.Errorf("insert reservation batch failed: %w", err)
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, err
	}

	return batch, nil
}

func (r *mongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation: %w", err)
	}
	return &res, nil
}

func (r *mongoReservationRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoReservationRepo) DeleteEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"endTime": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to purge reservations: %w", err)
	}
	return res.DeletedCount, nil
}
