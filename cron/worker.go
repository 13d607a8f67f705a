package cron

import (
	"context"
	"log"
	"time"

	"roomify/config"
	reservationRepo "roomify/database/repository/reservation"

	"github.com/hibiken/asynq"
)

const TypeReservationPurge = "reservation:purge"

// purgeSchedule runs the cleanup nightly, off peak.
const purgeSchedule = "0 3 * * *"

// InitPurgeWorker starts the background worker that removes reservations
// whose end time fell out of the retention window. Both the periodic
// scheduler and the task server run in background goroutines.
func InitPurgeWorker(reservations reservationRepo.Repository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			// Purging is a single sweep; there is nothing to parallelize.
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationPurge, handlePurgeTask(reservations))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(purgeSchedule, asynq.NewTask(TypeReservationPurge, nil)); err != nil {
		log.Fatalf("[PurgeWorker] failed to register purge schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[PurgeWorker] scheduler stopped: %v", err)
		}
	}()

	go func() {
		log.Println("[PurgeWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[PurgeWorker] worker stopped: %v", err)
		}
	}()
}

func handlePurgeTask(reservations reservationRepo.Repository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		retention := config.AppConfig.PurgeRetentionDays
		if retention <= 0 {
			retention = 90
		}
		cutoff := time.Now().AddDate(0, 0, -retention)

		deleted, err := reservations.DeleteEndedBefore(ctx, cutoff)
		if err != nil {
			log.Printf("[PurgeWorker] purge failed: %v", err)
			return err
		}
		log.Printf("[PurgeWorker] purged %d reservations ended before %s", deleted, cutoff.Format(time.RFC3339))
		return nil
	}
}
