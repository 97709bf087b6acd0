// services/pricing/quote.go
package pricing

import (
	"time"

	"rentora/models"
	"rentora/services/calendar"
)

// TotalDays converts a pickup/dropoff window into billed days. A dropoff
// hour later than the pickup hour means more than calendarDays full 24h
// periods elapsed, so one extra day is billed; an equal-or-earlier hour is
// not. Always at least 1.
func TotalDays(pickup time.Time, pickupHour int, dropoff time.Time, dropoffHour int) int {
	days := models.DaysBetween(pickup, dropoff)
	if dropoffHour > pickupHour {
		days++
	}
	if days < 1 {
		return 1
	}
	return days
}

// discountPct picks the discount tier for a stay length. Tiers are
// mutually exclusive; the higher one wins.
func discountPct(profile models.PricingProfile, totalDays int) float64 {
	switch {
	case totalDays >= 30:
		return profile.MonthlyDiscountPct
	case totalDays >= 7:
		return profile.WeeklyDiscountPct
	default:
		return 0
	}
}

// ComputeQuote prices one candidate rental window against an immutable
// snapshot of the listing's pricing profile, season table and calendar.
// With preview set the availability gate is skipped so the UI can show an
// indicative price for blocked dates.
//
// Returned errors are typed: *ValidationError for malformed input,
// *ConflictError when a billed date is blocked.
func ComputeQuote(
	profile models.PricingProfile,
	seasons *SeasonTable,
	cal *calendar.Calendar,
	req models.QuoteRequest,
	preview bool,
) (*models.Quote, error) {
	pickup, err := models.ParseDate(req.PickupDate)
	if err != nil {
		return nil, &ValidationError{Field: "pickupDate", Message: err.Error()}
	}
	dropoff, err := models.ParseDate(req.DropoffDate)
	if err != nil {
		return nil, &ValidationError{Field: "dropoffDate", Message: err.Error()}
	}
	if req.PickupHour < 0 || req.PickupHour > 23 {
		return nil, &ValidationError{Field: "pickupHour", Message: "must be between 0 and 23"}
	}
	if req.DropoffHour < 0 || req.DropoffHour > 23 {
		return nil, &ValidationError{Field: "dropoffHour", Message: "must be between 0 and 23"}
	}
	if !dropoff.After(pickup) {
		return nil, &ValidationError{Field: "dropoffDate", Message: "must be after pickupDate"}
	}
	if req.ChildSeats < 0 {
		return nil, &ValidationError{Field: "childSeats", Message: "must not be negative"}
	}

	totalDays := TotalDays(pickup, req.PickupHour, dropoff, req.DropoffHour)

	if !preview && cal != nil {
		blocked := false
		for i := 0; i < totalDays; i++ {
			if cal.IsBlocked(pickup.AddDate(0, 0, i)) {
				blocked = true
				break
			}
		}
		if blocked {
			return nil, &ConflictError{
				Message:   "requested dates are unavailable",
				Conflicts: cal.ConflictsWith(pickup, pickup.AddDate(0, 0, totalDays)),
			}
		}
	}

	// Per-day rate: seasonal override when one applies, base price otherwise.
	dailyRates := make([]float64, 0, totalDays)
	subtotal := 0.0
	for i := 0; i < totalDays; i++ {
		rate := profile.BasePrice
		if p, ok := seasons.PriceFor(pickup.AddDate(0, 0, i)); ok {
			rate = p
		}
		dailyRates = append(dailyRates, rate)
		subtotal += rate
	}

	pct := discountPct(profile, totalDays)
	discount := subtotal * pct / 100

	fees := models.QuoteFees{}
	if req.ExtraDriver {
		fees.ExtraDriver = profile.ExtraDriverFee
	}
	if req.ChildSeats > 0 {
		fees.ChildSeats = profile.ChildSeatFeePerDay * float64(req.ChildSeats) * float64(totalDays)
	}
	if req.PickupIsAirport {
		fees.AirportPickup = profile.AirportPickupFee
	}
	if req.DropoffIsAirport {
		fees.AirportDropoff = profile.AirportDropoffFee
	}
	feeTotal := fees.ExtraDriver + fees.ChildSeats + fees.AirportPickup + fees.AirportDropoff

	total := subtotal - discount + feeTotal

	// The split is done in integer cents on the rounded total so that
	// payNow + payLater reproduces it exactly.
	totalCents := toCents(total)
	payNowCents := toCents(profile.ReservationFee)
	if payNowCents > totalCents {
		payNowCents = totalCents
	}

	deposit := 0.0
	if profile.DepositRequired {
		deposit = RoundMoney(profile.DepositAmount)
	}

	for i, r := range dailyRates {
		dailyRates[i] = RoundMoney(r)
	}
	fees.ExtraDriver = RoundMoney(fees.ExtraDriver)
	fees.ChildSeats = RoundMoney(fees.ChildSeats)
	fees.AirportPickup = RoundMoney(fees.AirportPickup)
	fees.AirportDropoff = RoundMoney(fees.AirportDropoff)
	fees.Total = RoundMoney(feeTotal)

	q := &models.Quote{
		TotalDays:      totalDays,
		DailyRates:     dailyRates,
		Subtotal:       RoundMoney(subtotal),
		DiscountPct:    pct,
		DiscountAmount: RoundMoney(discount),
		Fees:           fees,
		Total:          fromCents(totalCents),
		PayNow:         fromCents(payNowCents),
		PayLater:       fromCents(totalCents - payNowCents),
		DepositAmount:  deposit,
	}
	// Unlimited-mileage listings carry neither an allowance nor an overage fee.
	if profile.MileageLimitPerDay != nil {
		allowance := *profile.MileageLimitPerDay * totalDays
		q.MileageAllowanceKm = &allowance
		q.OverageFeePerKm = profile.OverageFeePerKm
	}
	return q, nil
}
