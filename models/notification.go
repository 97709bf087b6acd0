package models

import "time"

// BookingNoticePayload is the asynq task payload emitted when a booking
// changes state. Delivery (push/email) is handled by an external channel;
// the worker only records the notice.
type BookingNoticePayload struct {
	Event     string  `json:"event"` // "booking.confirmed" or "booking.cancelled"
	BookingID string  `json:"bookingId"`
	ListingID string  `json:"listingId"`
	UserID    string  `json:"userId"`
	VendorID  string  `json:"vendorId"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Total     float64 `json:"total"`
	PayNow    float64 `json:"payNow"`
}

// NotificationRecord is the stored trace of a processed booking notice.
type NotificationRecord struct {
	ID        string    `bson:"id" json:"id"`
	Event     string    `bson:"event" json:"event"`
	BookingID string    `bson:"bookingId" json:"bookingId"`
	ListingID string    `bson:"listingId" json:"listingId"`
	UserID    string    `bson:"userId" json:"userId"`
	VendorID  string    `bson:"vendorId" json:"vendorId"`
	Body      string    `bson:"body" json:"body"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
