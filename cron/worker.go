package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"rentora/config"
	"rentora/database/repository"
	"rentora/models"
	"rentora/services/tasks"
)

// InitBookingNoticeWorker runs the async worker in background. It drains
// booking notices off the Redis queue and records them for the external
// delivery channel.
func InitBookingNoticeWorker(store repository.NotificationStore) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingNotice, handleBookingNotice(store))

	// Start async worker with retry logic
	go func() {
		log.Println("[BookingNoticeWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[BookingNoticeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[BookingNoticeWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingNotice(store repository.NotificationStore) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.BookingNoticePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[BookingNoticeHandler] invalid payload: %v", err)
			return err
		}

		var body string
		switch p.Event {
		case "booking.confirmed":
			body = fmt.Sprintf("Booking %s confirmed for %s to %s (total %.2f, paid now %.2f)",
				p.BookingID, p.StartDate, p.EndDate, p.Total, p.PayNow)
		case "booking.cancelled":
			body = fmt.Sprintf("Booking %s for %s to %s was cancelled",
				p.BookingID, p.StartDate, p.EndDate)
		default:
			log.Printf("[BookingNoticeHandler] unknown event type: %s", p.Event)
			return nil
		}

		rec := &models.NotificationRecord{
			ID:        uuid.New().String(),
			Event:     p.Event,
			BookingID: p.BookingID,
			ListingID: p.ListingID,
			UserID:    p.UserID,
			VendorID:  p.VendorID,
			Body:      body,
		}
		if err := store.Save(ctx, rec); err != nil {
			log.Printf("[BookingNoticeHandler] failed to record notice for booking %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}
