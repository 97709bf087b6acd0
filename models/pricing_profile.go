package models

// SeasonType ranks a seasonal rate for overlap resolution.
type SeasonType string

const (
	SeasonPeak     SeasonType = "peak"
	SeasonStandard SeasonType = "standard"
	SeasonOff      SeasonType = "off"
)

// SeasonalRate is a named date range with an overriding daily rate.
// Start and end dates are inclusive; overlapping ranges are allowed.
type SeasonalRate struct {
	ID        string     `bson:"id" json:"id"`               // Unique season identifier
	Name      string     `bson:"name" json:"name"`           // e.g., "Summer High Season"
	StartDate string     `bson:"startDate" json:"startDate"` // Inclusive, "YYYY-MM-DD"
	EndDate   string     `bson:"endDate" json:"endDate"`     // Inclusive, "YYYY-MM-DD"
	Price     float64    `bson:"price" json:"price"`         // Overriding daily rate, >= 0
	Type      SeasonType `bson:"type" json:"type"`           // peak, standard or off
}

// PricingProfile holds a listing's rate, fee and policy configuration.
// It is owned by the listing's vendor and treated as an immutable snapshot
// during a single quote computation.
type PricingProfile struct {
	BasePrice          float64 `bson:"basePrice" json:"basePrice"`                   // Standard daily rate
	WeeklyDiscountPct  float64 `bson:"weeklyDiscountPct" json:"weeklyDiscountPct"`   // Applies at 7+ days
	MonthlyDiscountPct float64 `bson:"monthlyDiscountPct" json:"monthlyDiscountPct"` // Applies at 30+ days

	ExtraDriverFee     float64 `bson:"extraDriverFee" json:"extraDriverFee"`         // Flat per rental
	AirportPickupFee   float64 `bson:"airportPickupFee" json:"airportPickupFee"`     // Delivery to airport at pickup
	AirportDropoffFee  float64 `bson:"airportDropoffFee" json:"airportDropoffFee"`   // Collection at airport at dropoff
	ChildSeatFeePerDay float64 `bson:"childSeatFeePerDay" json:"childSeatFeePerDay"` // Per seat per day

	DepositRequired bool    `bson:"depositRequired" json:"depositRequired"`
	DepositAmount   float64 `bson:"depositAmount" json:"depositAmount"` // Refundable hold, never part of the total

	MileageLimitPerDay *int    `bson:"mileageLimitPerDay,omitempty" json:"mileageLimitPerDay,omitempty"` // km per day, nil = unlimited
	OverageFeePerKm    float64 `bson:"overageFeePerKm" json:"overageFeePerKm"`

	ReservationFee float64 `bson:"reservationFee" json:"reservationFee"` // Fixed pay-now portion of the total

	MinNights     int  `bson:"minNights" json:"minNights"`
	MaxNights     *int `bson:"maxNights,omitempty" json:"maxNights,omitempty"` // nil = no upper bound
	LeadTimeHours int  `bson:"leadTimeHours" json:"leadTimeHours"`             // Minimum hours between now and pickup

	SeasonalPricingEnabled bool           `bson:"seasonalPricingEnabled" json:"seasonalPricingEnabled"`
	SeasonalRates          []SeasonalRate `bson:"seasonalRates,omitempty" json:"seasonalRates,omitempty"`
}
