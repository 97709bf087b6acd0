package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"rentora/models"
)

const TypeBookingNotice = "booking:notice"

// NewBookingNoticeTask builds the asynq task enqueued when a booking is
// confirmed or cancelled.
func NewBookingNoticeTask(payload models.BookingNoticePayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingNotice, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}
