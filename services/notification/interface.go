package notification

import (
	"context"

	"rentora/models"
)

// Service fans booking state changes out to interested parties. The
// engine treats delivery as fire-and-forget: failures are logged, never
// surfaced to the booking flow.
type Service interface {
	BookingConfirmed(ctx context.Context, listing *models.Listing, b models.Booking) error
	BookingCancelled(ctx context.Context, listing *models.Listing, b models.Booking) error
}
