// services/booking/service.go
package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rentora/database/repository"
	"rentora/models"
	"rentora/services/calendar"
	"rentora/services/notification"
	"rentora/services/pricing"
)

// Service is the booking engine's entry point for the HTTP layer: it
// exposes quoting, dry-run validation and the confirm/cancel flows.
type Service interface {
	QuoteFor(ctx context.Context, req models.QuoteRequest, preview bool) (*models.Quote, error)
	ValidateRange(ctx context.Context, listingID, startDate, endDate string, now time.Time) error
	ConfirmBooking(ctx context.Context, req models.QuoteRequest, userID string) (*models.Booking, *models.Quote, error)
	CancelBooking(ctx context.Context, listingID, bookingID string) (*models.Booking, error)
}

// DefaultBookingService implements Service. The pricing and validation
// steps run against an immutable listing snapshot; the commit is a
// compare-and-swap on the listing version, retried on lost races so two
// customers cannot both claim the same range.
type DefaultBookingService struct {
	Listings repository.ListingRepository
	Notifier notification.Service
	Logger   *zap.Logger

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

// casAttempts bounds optimistic retries on booking writes.
const casAttempts = 3

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// QuoteFor prices a candidate request against the listing's current
// snapshot. With preview set, blocked dates still price (indicative only).
func (s *DefaultBookingService) QuoteFor(ctx context.Context, req models.QuoteRequest, preview bool) (*models.Quote, error) {
	listing, err := s.Listings.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	cal := calendar.FromState(listing.Availability)
	seasons := pricing.NewSeasonTable(listing.Pricing)
	return pricing.ComputeQuote(listing.Pricing, seasons, cal, req, preview)
}

// ValidateRange runs the policy gates for a candidate [start, end) range
// without mutating anything, for dry-run previews in the booking UI.
func (s *DefaultBookingService) ValidateRange(ctx context.Context, listingID, startDate, endDate string, now time.Time) error {
	listing, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return err
	}
	start, err := models.ParseDate(startDate)
	if err != nil {
		return pricing.NewValidationError("startDate", err.Error())
	}
	end, err := models.ParseDate(endDate)
	if err != nil {
		return pricing.NewValidationError("endDate", err.Error())
	}
	cal := calendar.FromState(listing.Availability)
	return Validate(start, end, listing.Pricing, cal, now)
}

// ConfirmBooking validates, prices and commits a booking. Each attempt
// re-reads the listing, re-runs the gates against the fresh snapshot and
// appends under the version read, so a range claimed between validation
// and commit surfaces as a conflict instead of a double booking.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, req models.QuoteRequest, userID string) (*models.Booking, *models.Quote, error) {
	if userID == "" {
		return nil, nil, pricing.NewValidationError("userId", "is required")
	}

	var lastErr error
	for attempt := 1; attempt <= casAttempts; attempt++ {
		listing, err := s.Listings.GetByID(ctx, req.ListingID)
		if err != nil {
			return nil, nil, err
		}
		cal := calendar.FromState(listing.Availability)
		seasons := pricing.NewSeasonTable(listing.Pricing)

		quote, err := pricing.ComputeQuote(listing.Pricing, seasons, cal, req, false)
		if err != nil {
			return nil, nil, err
		}

		start, _ := models.ParseDate(req.PickupDate)
		end := start.AddDate(0, 0, quote.TotalDays)
		if err := Validate(start, end, listing.Pricing, cal, s.now()); err != nil {
			return nil, nil, err
		}

		now := s.now()
		b := models.Booking{
			ID:        uuid.New().String(),
			ListingID: listing.ID,
			UserID:    userID,
			StartDate: models.FormatDate(start),
			EndDate:   models.FormatDate(end),
			Status:    models.BookingConfirmed,
			Total:     quote.Total,
			PayNow:    quote.PayNow,
			PayLater:  quote.PayLater,
			Deposit:   quote.DepositAmount,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.Listings.AppendBooking(ctx, listing.ID, listing.Version, b)
		if err == nil {
			if nerr := s.Notifier.BookingConfirmed(ctx, listing, b); nerr != nil {
				s.Logger.Error("failed to send booking confirmation notice",
					zap.String("bookingId", b.ID), zap.Error(nerr))
			}
			return &b, quote, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, nil, err
		}
		lastErr = err
		s.Logger.Warn("booking commit lost optimistic race, retrying",
			zap.String("listingId", listing.ID), zap.Int("attempt", attempt))
	}
	return nil, nil, &pricing.ConflictError{
		Message: fmt.Sprintf("listing was modified concurrently (%v)", lastErr),
	}
}

// CancelBooking transitions a booking to cancelled, which immediately
// frees its dates on the calendar. Only pending and confirmed bookings may
// cancel; cancelled is terminal.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, listingID, bookingID string) (*models.Booking, error) {
	var lastErr error
	for attempt := 1; attempt <= casAttempts; attempt++ {
		listing, err := s.Listings.GetByID(ctx, listingID)
		if err != nil {
			return nil, err
		}

		var target *models.Booking
		for i := range listing.Availability.Bookings {
			if listing.Availability.Bookings[i].ID == bookingID {
				target = &listing.Availability.Bookings[i]
				break
			}
		}
		if target == nil {
			return nil, repository.ErrNotFound
		}
		if !CanTransition(target.Status, models.BookingCancelled) {
			return nil, pricing.NewValidationError("status",
				fmt.Sprintf("booking in state %q cannot be cancelled", target.Status))
		}

		err = s.Listings.SetBookingStatus(ctx, listingID, listing.Version, bookingID, models.BookingCancelled)
		if err == nil {
			target.Status = models.BookingCancelled
			if nerr := s.Notifier.BookingCancelled(ctx, listing, *target); nerr != nil {
				s.Logger.Error("failed to send booking cancellation notice",
					zap.String("bookingId", bookingID), zap.Error(nerr))
			}
			return target, nil
		}
		if !errors.Is(err, repository.ErrVersionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("cancel booking %s: %w", bookingID, lastErr)
}
