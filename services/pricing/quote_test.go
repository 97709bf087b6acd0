package pricing

import (
	"errors"
	"math"
	"testing"

	"rentora/models"
	"rentora/services/calendar"
)

func baseProfile() models.PricingProfile {
	return models.PricingProfile{
		BasePrice:          45,
		WeeklyDiscountPct:  10,
		MonthlyDiscountPct: 20,
		ReservationFee:     28,
	}
}

func quoteReq(pickup string, pickupHour int, dropoff string, dropoffHour int) models.QuoteRequest {
	return models.QuoteRequest{
		ListingID:   "l1",
		PickupDate:  pickup,
		PickupHour:  pickupHour,
		DropoffDate: dropoff,
		DropoffHour: dropoffHour,
	}
}

func emptyCalendar() *calendar.Calendar {
	return calendar.FromState(models.AvailabilityState{})
}

func TestTotalDays(t *testing.T) {
	cases := []struct {
		pickup      string
		pickupHour  int
		dropoff     string
		dropoffHour int
		want        int
	}{
		{"2024-01-01", 10, "2024-01-03", 10, 2}, // equal return hour: whole days only
		{"2024-01-01", 10, "2024-01-03", 14, 3}, // later return hour bills an extra day
		{"2024-01-01", 10, "2024-01-03", 9, 2},  // earlier return hour does not
		{"2024-01-01", 0, "2024-01-02", 23, 2},
		{"2024-01-01", 23, "2024-01-02", 0, 1},
		{"2024-01-01", 10, "2024-01-01", 14, 1}, // degenerate same-day input still bills one day
	}
	for _, tc := range cases {
		got := TotalDays(date(tc.pickup), tc.pickupHour, date(tc.dropoff), tc.dropoffHour)
		if got != tc.want {
			t.Errorf("TotalDays(%s %dh -> %s %dh) = %d, want %d",
				tc.pickup, tc.pickupHour, tc.dropoff, tc.dropoffHour, got, tc.want)
		}
	}
}

func TestComputeQuoteWeeklyDiscount(t *testing.T) {
	q, err := ComputeQuote(baseProfile(), nil, emptyCalendar(),
		quoteReq("2024-03-01", 10, "2024-03-08", 10), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalDays != 7 {
		t.Fatalf("totalDays = %d, want 7", q.TotalDays)
	}
	if q.Subtotal != 315 {
		t.Errorf("subtotal = %v, want 315", q.Subtotal)
	}
	if q.DiscountPct != 10 || q.DiscountAmount != 31.5 {
		t.Errorf("discount = %v%% / %v, want 10%% / 31.5", q.DiscountPct, q.DiscountAmount)
	}
	if q.Total != 283.5 {
		t.Errorf("total = %v, want 283.5", q.Total)
	}
	if q.PayNow != 28 || q.PayLater != 255.5 {
		t.Errorf("pay split = %v now / %v later, want 28 / 255.5", q.PayNow, q.PayLater)
	}
}

func TestComputeQuoteDiscountTiers(t *testing.T) {
	profile := baseProfile()

	// 6 days: no tier.
	q, err := ComputeQuote(profile, nil, emptyCalendar(),
		quoteReq("2024-03-01", 10, "2024-03-07", 10), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DiscountPct != 0 || q.DiscountAmount != 0 {
		t.Errorf("6-day stay must have no discount, got %v%%", q.DiscountPct)
	}

	// 30 days: monthly tier wins over weekly.
	q, err = ComputeQuote(profile, nil, emptyCalendar(),
		quoteReq("2024-03-01", 10, "2024-03-31", 10), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TotalDays != 30 {
		t.Fatalf("totalDays = %d, want 30", q.TotalDays)
	}
	if q.DiscountPct != 20 {
		t.Errorf("30-day stay must use the monthly tier, got %v%%", q.DiscountPct)
	}
}

func TestComputeQuoteFees(t *testing.T) {
	profile := baseProfile()
	profile.ExtraDriverFee = 15
	profile.ChildSeatFeePerDay = 3
	profile.AirportPickupFee = 20
	profile.AirportDropoffFee = 25

	req := quoteReq("2024-03-01", 10, "2024-03-03", 10) // 2 days
	req.ExtraDriver = true
	req.ChildSeats = 2
	req.PickupIsAirport = true
	req.DropoffIsAirport = true

	q, err := ComputeQuote(profile, nil, emptyCalendar(), req, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Fees.ExtraDriver != 15 {
		t.Errorf("extra driver fee = %v, want flat 15", q.Fees.ExtraDriver)
	}
	if q.Fees.ChildSeats != 12 { // 3 * 2 seats * 2 days
		t.Errorf("child seat fee = %v, want 12", q.Fees.ChildSeats)
	}
	if q.Fees.AirportPickup != 20 || q.Fees.AirportDropoff != 25 {
		t.Errorf("airport legs = %v/%v, want 20/25 charged independently",
			q.Fees.AirportPickup, q.Fees.AirportDropoff)
	}
	if q.Fees.Total != 72 {
		t.Errorf("fee total = %v, want 72", q.Fees.Total)
	}
	if q.Total != 90+72 { // 2*45 subtotal, no discount
		t.Errorf("total = %v, want 162", q.Total)
	}
}

func TestComputeQuoteSeasonalDailyRates(t *testing.T) {
	profile := baseProfile()
	profile.SeasonalPricingEnabled = true
	profile.SeasonalRates = []models.SeasonalRate{
		{ID: "s", StartDate: "2024-03-01", EndDate: "2024-03-02", Price: 80, Type: models.SeasonPeak},
	}

	q, err := ComputeQuote(profile, NewSeasonTable(profile), emptyCalendar(),
		quoteReq("2024-03-01", 10, "2024-03-04", 10), false) // 3 days: 03-01, 03-02, 03-03
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{80, 80, 45}
	if len(q.DailyRates) != len(want) {
		t.Fatalf("dailyRates = %v, want %v", q.DailyRates, want)
	}
	for i := range want {
		if q.DailyRates[i] != want[i] {
			t.Errorf("dailyRates[%d] = %v, want %v", i, q.DailyRates[i], want[i])
		}
	}
	if q.Subtotal != 205 {
		t.Errorf("subtotal = %v, want 205", q.Subtotal)
	}
}

func TestComputeQuoteValidation(t *testing.T) {
	cases := []struct {
		name string
		req  models.QuoteRequest
	}{
		{"dropoff equals pickup", quoteReq("2024-03-05", 10, "2024-03-05", 14)},
		{"dropoff before pickup", quoteReq("2024-03-05", 10, "2024-03-01", 10)},
		{"bad pickup date", quoteReq("03/05/2024", 10, "2024-03-08", 10)},
		{"bad pickup hour", quoteReq("2024-03-05", 24, "2024-03-08", 10)},
		{"negative dropoff hour", quoteReq("2024-03-05", 10, "2024-03-08", -1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ComputeQuote(baseProfile(), nil, emptyCalendar(), tc.req, false)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
		})
	}

	req := quoteReq("2024-03-01", 10, "2024-03-08", 10)
	req.ChildSeats = -1
	_, err := ComputeQuote(baseProfile(), nil, emptyCalendar(), req, false)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "childSeats" {
		t.Fatalf("expected childSeats validation error, got %v", err)
	}
}

func TestComputeQuoteBlockedRange(t *testing.T) {
	cal := calendar.FromState(models.AvailabilityState{
		ManualBlocks: []string{"2024-03-03"},
	})
	req := quoteReq("2024-03-01", 10, "2024-03-05", 10)

	_, err := ComputeQuote(baseProfile(), nil, cal, req, false)
	var cErr *ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected *ConflictError for a blocked range, got %v", err)
	}
	if len(cErr.Conflicts) == 0 {
		t.Fatal("conflict error must carry the overlapping entries")
	}

	// Preview skips the availability gate and still prices.
	q, err := ComputeQuote(baseProfile(), nil, cal, req, true)
	if err != nil {
		t.Fatalf("preview quote must price blocked dates, got %v", err)
	}
	if q.TotalDays != 4 {
		t.Errorf("preview totalDays = %d, want 4", q.TotalDays)
	}
}

func TestComputeQuotePaySplitExact(t *testing.T) {
	// Non-integer totals: the split must reproduce the total exactly.
	bases := []float64{33.33, 47.77, 59.99}
	for _, base := range bases {
		profile := baseProfile()
		profile.BasePrice = base

		q, err := ComputeQuote(profile, nil, emptyCalendar(),
			quoteReq("2024-03-01", 10, "2024-03-08", 10), false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.PayNow > q.Total {
			t.Errorf("base %v: payNow %v exceeds total %v", base, q.PayNow, q.Total)
		}
		if math.Abs((q.PayNow+q.PayLater)-q.Total) > 1e-9 {
			t.Errorf("base %v: payNow %v + payLater %v != total %v", base, q.PayNow, q.PayLater, q.Total)
		}
		if toCents(q.PayNow)+toCents(q.PayLater) != toCents(q.Total) {
			t.Errorf("base %v: split drifts at cent precision", base)
		}
	}
}

func TestComputeQuotePayNowCappedAtTotal(t *testing.T) {
	profile := baseProfile()
	profile.BasePrice = 10
	profile.ReservationFee = 100 // larger than a 2-day total

	q, err := ComputeQuote(profile, nil, emptyCalendar(),
		quoteReq("2024-03-01", 10, "2024-03-03", 10), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.PayNow != q.Total || q.PayLater != 0 {
		t.Errorf("payNow must cap at total: got now=%v later=%v total=%v", q.PayNow, q.PayLater, q.Total)
	}
}

func TestComputeQuoteDepositReportedSeparately(t *testing.T) {
	profile := baseProfile()
	profile.DepositRequired = true
	profile.DepositAmount = 500

	q, err := ComputeQuote(profile, nil, emptyCalendar(),
		quoteReq("2024-03-01", 10, "2024-03-03", 10), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.DepositAmount != 500 {
		t.Errorf("deposit = %v, want 500", q.DepositAmount)
	}
	if q.Total != 90 {
		t.Errorf("deposit must not be added to total: total = %v, want 90", q.Total)
	}
}

func TestComputeQuoteMileageAllowance(t *testing.T) {
	limit := 150
	profile := baseProfile()
	profile.MileageLimitPerDay = &limit
	profile.OverageFeePerKm = 0.35

	q, err := ComputeQuote(profile, nil, emptyCalendar(),
		quoteReq("2024-03-01", 10, "2024-03-04", 10), false) // 3 days
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.MileageAllowanceKm == nil || *q.MileageAllowanceKm != 450 {
		t.Fatalf("mileage allowance = %v, want 450", q.MileageAllowanceKm)
	}
	if q.OverageFeePerKm != 0.35 {
		t.Errorf("overage fee = %v, want 0.35", q.OverageFeePerKm)
	}
}

func TestRoundMoneyHalfUp(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{1.005, 1.01},
		{1.004, 1.0},
		{31.5, 31.5},
		{0, 0},
		{283.499, 283.5},
	}
	for _, tc := range cases {
		if got := RoundMoney(tc.in); got != tc.want {
			t.Errorf("RoundMoney(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
