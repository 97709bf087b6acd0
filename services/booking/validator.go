// services/booking/validator.go
package booking

import (
	"fmt"
	"time"

	"rentora/models"
	"rentora/services/calendar"
	"rentora/services/pricing"
)

// Validate applies the listing's policy gates to a candidate booking range
// [start, end). Checks are ordered and the first failure wins:
//
//  1. chronology          -> *pricing.ValidationError
//  2. lead time           -> *PolicyViolationError
//  3. min/max nights      -> *PolicyViolationError
//  4. calendar conflicts  -> *pricing.ConflictError
//
// Validate never mutates state, so it is safe to call for dry-run
// previews. On success the persistence layer is responsible for treating
// "validate + reserve" as a single optimistic transaction (see the listing
// repository's compare-and-swap append).
func Validate(
	start, end time.Time,
	profile models.PricingProfile,
	cal *calendar.Calendar,
	now time.Time,
) error {
	if !start.Before(end) {
		return pricing.NewValidationError("endDate", "must be after startDate")
	}

	earliest := now.Add(time.Duration(profile.LeadTimeHours) * time.Hour)
	if start.Before(earliest) {
		return newPolicyViolation(ReasonLeadTime,
			fmt.Sprintf("pickup must be at least %d hours from now", profile.LeadTimeHours))
	}

	nights := models.DaysBetween(start, end)
	if nights < profile.MinNights {
		return newPolicyViolation(ReasonMinNights,
			fmt.Sprintf("stay must be at least %d nights", profile.MinNights))
	}
	if profile.MaxNights != nil && nights > *profile.MaxNights {
		return newPolicyViolation(ReasonMaxNights,
			fmt.Sprintf("stay must be at most %d nights", *profile.MaxNights))
	}

	if conflicts := cal.ConflictsWith(start, end); len(conflicts) > 0 {
		return &pricing.ConflictError{
			Message:   "candidate range overlaps existing blocks or bookings",
			Conflicts: conflicts,
		}
	}
	return nil
}
