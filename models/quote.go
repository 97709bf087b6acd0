package models

// QuoteRequest describes one candidate rental window plus the selected
// extras. Hours are local pickup-desk hours in the 0-23 range.
type QuoteRequest struct {
	ListingID        string `json:"listingId"`
	PickupDate       string `json:"pickupDate"`  // "YYYY-MM-DD"
	PickupHour       int    `json:"pickupHour"`  // 0-23
	DropoffDate      string `json:"dropoffDate"` // "YYYY-MM-DD"
	DropoffHour      int    `json:"dropoffHour"` // 0-23
	ExtraDriver      bool   `json:"extraDriver"`
	ChildSeats       int    `json:"childSeats"`
	PickupIsAirport  bool   `json:"pickupIsAirport"`
	DropoffIsAirport bool   `json:"dropoffIsAirport"`
}

// QuoteFees is the per-quote fee breakdown. Each leg of airport delivery
// is charged independently.
type QuoteFees struct {
	ExtraDriver    float64 `json:"extraDriver"`
	ChildSeats     float64 `json:"childSeats"`
	AirportPickup  float64 `json:"airportPickup"`
	AirportDropoff float64 `json:"airportDropoff"`
	Total          float64 `json:"total"`
}

// Quote is the priced breakdown computed for one request. It carries no
// identity, is never persisted and is recomputed per request. All money
// values are rounded to 2 decimals; PayNow + PayLater == Total exactly.
type Quote struct {
	TotalDays      int       `json:"totalDays"`
	DailyRates     []float64 `json:"dailyRates"` // One entry per billed day, pickup date first
	Subtotal       float64   `json:"subtotal"`
	DiscountPct    float64   `json:"discountPct"`
	DiscountAmount float64   `json:"discountAmount"`
	Fees           QuoteFees `json:"fees"`
	Total          float64   `json:"total"`
	PayNow         float64   `json:"payNow"`
	PayLater       float64   `json:"payLater"`
	DepositAmount  float64   `json:"depositAmount"` // Refundable hold, not included in Total

	MileageAllowanceKm *int    `json:"mileageAllowanceKm,omitempty"` // Included km for the rental, nil = unlimited
	OverageFeePerKm    float64 `json:"overageFeePerKm,omitempty"`
}
