// services/calendar/calendar.go
package calendar

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"rentora/models"
)

// Calendar is an in-memory snapshot of one listing's availability: the
// vendor's manual blocks plus the booking history. All checks are
// point-in-time against this snapshot; there is no background processing
// and no cross-call caching.
type Calendar struct {
	alwaysAvailable bool
	manualBlocks    map[string]struct{}
	bookings        []models.Booking
}

// FromState builds a calendar from the persisted availability state.
func FromState(state models.AvailabilityState) *Calendar {
	c := &Calendar{
		alwaysAvailable: state.AlwaysAvailable,
		manualBlocks:    make(map[string]struct{}, len(state.ManualBlocks)),
		bookings:        append([]models.Booking(nil), state.Bookings...),
	}
	for _, d := range state.ManualBlocks {
		c.manualBlocks[d] = struct{}{}
	}
	return c
}

// State renders the calendar back into its persistable form, with manual
// blocks sorted for stable storage.
func (c *Calendar) State() models.AvailabilityState {
	blocks := make([]string, 0, len(c.manualBlocks))
	for d := range c.manualBlocks {
		blocks = append(blocks, d)
	}
	sort.Strings(blocks)
	return models.AvailabilityState{
		AlwaysAvailable: c.alwaysAvailable,
		ManualBlocks:    blocks,
		Bookings:        append([]models.Booking(nil), c.bookings...),
	}
}

// IsBlocked reports whether a single date is unavailable. A listing marked
// always-available is never blocked. Otherwise a date is blocked when it is
// manually blocked or covered by a pending or confirmed booking; cancelled
// bookings free their dates immediately.
func (c *Calendar) IsBlocked(date time.Time) bool {
	if c.alwaysAvailable {
		return false
	}
	key := models.FormatDate(date)
	if _, ok := c.manualBlocks[key]; ok {
		return true
	}
	day, _ := models.ParseDate(key)
	for _, b := range c.bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		start, end, ok := bookingInterval(b)
		if !ok {
			continue
		}
		// half-open [start, end)
		if !day.Before(start) && day.Before(end) {
			return true
		}
	}
	return false
}

// BlockRange idempotently adds every date in [start, end] inclusive to the
// manual block set.
func (c *Calendar) BlockRange(start, end time.Time) {
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		c.manualBlocks[models.FormatDate(d)] = struct{}{}
	}
}

// UnblockRange removes every date in [start, end] inclusive from the
// manual block set.
func (c *Calendar) UnblockRange(start, end time.Time) {
	for d := dateOnly(start); !d.After(dateOnly(end)); d = d.AddDate(0, 0, 1) {
		delete(c.manualBlocks, models.FormatDate(d))
	}
}

// ClearManualBlocks removes all manual blocks, leaving bookings untouched.
func (c *Calendar) ClearManualBlocks() {
	c.manualBlocks = make(map[string]struct{})
}

// ConflictsWith returns every manual block and non-cancelled booking whose
// interval intersects the half-open candidate range [start, end). A manual
// block on date d occupies [d, d+1).
func (c *Calendar) ConflictsWith(start, end time.Time) []models.Conflict {
	start = dateOnly(start)
	end = dateOnly(end)

	var conflicts []models.Conflict
	blocked := make([]string, 0, len(c.manualBlocks))
	for d := range c.manualBlocks {
		blocked = append(blocked, d)
	}
	sort.Strings(blocked)
	for _, key := range blocked {
		d, err := models.ParseDate(key)
		if err != nil {
			continue
		}
		next := d.AddDate(0, 0, 1)
		if start.Before(next) && d.Before(end) {
			conflicts = append(conflicts, models.Conflict{
				Kind:      models.ConflictManualBlock,
				StartDate: key,
				EndDate:   models.FormatDate(next),
			})
		}
	}

	for _, b := range c.bookings {
		if b.Status == models.BookingCancelled {
			continue
		}
		bStart, bEnd, ok := bookingInterval(b)
		if !ok {
			continue
		}
		if start.Before(bEnd) && bStart.Before(end) {
			conflicts = append(conflicts, models.Conflict{
				Kind:      models.ConflictBooking,
				StartDate: b.StartDate,
				EndDate:   b.EndDate,
				BookingID: b.ID,
				Status:    b.Status,
			})
		}
	}
	return conflicts
}

func bookingInterval(b models.Booking) (time.Time, time.Time, bool) {
	start, err := models.ParseDate(b.StartDate)
	if err != nil {
		zap.L().Warn("booking with unparseable start date on calendar",
			zap.String("bookingId", b.ID), zap.String("startDate", b.StartDate))
		return time.Time{}, time.Time{}, false
	}
	end, err := models.ParseDate(b.EndDate)
	if err != nil {
		zap.L().Warn("booking with unparseable end date on calendar",
			zap.String("bookingId", b.ID), zap.String("endDate", b.EndDate))
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
