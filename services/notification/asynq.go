package notification

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"rentora/models"
	"rentora/services/tasks"
)

// AsynqNotifier enqueues booking notices onto the Redis-backed task queue
// processed by the background worker.
type AsynqNotifier struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func NewAsynqNotifier(client *asynq.Client, logger *zap.Logger) *AsynqNotifier {
	return &AsynqNotifier{Client: client, Logger: logger}
}

func (n *AsynqNotifier) BookingConfirmed(ctx context.Context, listing *models.Listing, b models.Booking) error {
	return n.enqueue(ctx, "booking.confirmed", listing, b)
}

func (n *AsynqNotifier) BookingCancelled(ctx context.Context, listing *models.Listing, b models.Booking) error {
	return n.enqueue(ctx, "booking.cancelled", listing, b)
}

func (n *AsynqNotifier) enqueue(ctx context.Context, event string, listing *models.Listing, b models.Booking) error {
	payload := models.BookingNoticePayload{
		Event:     event,
		BookingID: b.ID,
		ListingID: listing.ID,
		UserID:    b.UserID,
		VendorID:  listing.VendorID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Total:     b.Total,
		PayNow:    b.PayNow,
	}
	task, opts, err := tasks.NewBookingNoticeTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build booking notice task: %w", err)
	}
	info, err := n.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue booking notice: %w", err)
	}
	n.Logger.Info("booking notice enqueued",
		zap.String("event", event),
		zap.String("bookingId", b.ID),
		zap.String("taskId", info.ID))
	return nil
}
