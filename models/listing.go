package models

import "time"

// ListingKind distinguishes the two rentable asset types on the platform.
type ListingKind string

const (
	ListingCar       ListingKind = "car"
	ListingApartment ListingKind = "apartment"
)

// Listing is the persisted document for one rentable asset. Pricing and
// availability are embedded so a single read yields the full snapshot the
// engine prices against. Version is bumped on every write and used as the
// compare-and-swap guard for booking confirmation.
type Listing struct {
	ID           string            `bson:"id" json:"id"`
	VendorID     string            `bson:"vendorId" json:"vendorId"`
	Title        string            `bson:"title" json:"title"`
	Kind         ListingKind       `bson:"kind" json:"kind"`
	Pricing      PricingProfile    `bson:"pricing" json:"pricing"`
	Availability AvailabilityState `bson:"availability" json:"availability"`
	Version      int               `bson:"version" json:"version"`
	CreatedAt    time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time         `bson:"updatedAt" json:"updatedAt"`
}
