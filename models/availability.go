package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation held against a listing's calendar.
// The occupied interval is half-open: [StartDate, EndDate).
type Booking struct {
	ID        string        `bson:"id" json:"id"`               // Unique booking identifier (UUID)
	ListingID string        `bson:"listingId" json:"listingId"` // Listing being booked
	UserID    string        `bson:"userId" json:"userId"`       // Customer who made the booking
	StartDate string        `bson:"startDate" json:"startDate"` // Inclusive, "YYYY-MM-DD"
	EndDate   string        `bson:"endDate" json:"endDate"`     // Exclusive, "YYYY-MM-DD"
	Status    BookingStatus `bson:"status" json:"status"`
	Total     float64       `bson:"total" json:"total"`     // Quoted total at confirmation time
	PayNow    float64       `bson:"payNow" json:"payNow"`   // Portion charged online
	PayLater  float64       `bson:"payLater" json:"payLater"` // Portion collected at pickup
	Deposit   float64       `bson:"deposit" json:"deposit"` // Refundable hold, reported separately
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

// AvailabilityState is the calendar snapshot for one listing.
// Manual blocks are individual dates the vendor removed from availability,
// independent of bookings. Bookings are never deleted, only cancelled, so
// the conflict history is preserved.
type AvailabilityState struct {
	AlwaysAvailable bool      `bson:"alwaysAvailable" json:"alwaysAvailable"`
	ManualBlocks    []string  `bson:"manualBlocks,omitempty" json:"manualBlocks,omitempty"` // Sorted "YYYY-MM-DD" dates
	Bookings        []Booking `bson:"bookings,omitempty" json:"bookings,omitempty"`
}

// ConflictKind discriminates the source of a calendar conflict.
type ConflictKind string

const (
	ConflictManualBlock ConflictKind = "manual_block"
	ConflictBooking     ConflictKind = "booking"
)

// Conflict is a manual block or non-cancelled booking whose interval
// intersects a candidate range.
type Conflict struct {
	Kind      ConflictKind  `json:"kind"`
	StartDate string        `json:"startDate"`                     // Inclusive
	EndDate   string        `json:"endDate"`                       // Exclusive
	BookingID string        `json:"bookingId,omitempty"`           // Set when Kind == booking
	Status    BookingStatus `json:"bookingStatus,omitempty"`       // Set when Kind == booking
}
