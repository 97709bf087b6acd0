// database/repository/listing.go
package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"rentora/database"
	"rentora/models"
)

// ListingRepository defines the persistence operations the engine's
// callers need. Every write bumps the listing's version; booking writes
// additionally require the expected version so that "validate + reserve"
// commits as a single optimistic transaction.
type ListingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Listing, error)
	Create(ctx context.Context, listing *models.Listing) error
	UpdatePricing(ctx context.Context, id string, pricing models.PricingProfile) error
	ReplaceSeasonalRates(ctx context.Context, id string, rates []models.SeasonalRate) error
	SetAvailability(ctx context.Context, id string, state models.AvailabilityState) error
	AppendBooking(ctx context.Context, id string, expectedVersion int, b models.Booking) error
	SetBookingStatus(ctx context.Context, id string, expectedVersion int, bookingID string, status models.BookingStatus) error
}

// MongoListingRepo implements ListingRepository on MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

func NewMongoListingRepo() *MongoListingRepo {
	return &MongoListingRepo{coll: database.Collection("listings")}
}

func (repo *MongoListingRepo) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var listing models.Listing
	err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing %s: %w", id, err)
	}
	return &listing, nil
}

func (repo *MongoListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now
	listing.Version = 1
	if _, err := repo.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to insert listing: %w", err)
	}
	return nil
}

// vendorUpdate applies a $set to one listing and bumps its version.
// Vendor edits are last-writer-wins; only booking writes CAS on version.
func (repo *MongoListingRepo) vendorUpdate(ctx context.Context, id string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set["updatedAt"] = time.Now()
	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": set, "$inc": bson.M{"version": 1}},
	)
	if err != nil {
		return fmt.Errorf("failed to update listing %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *MongoListingRepo) UpdatePricing(ctx context.Context, id string, pricing models.PricingProfile) error {
	return repo.vendorUpdate(ctx, id, bson.M{"pricing": pricing})
}

func (repo *MongoListingRepo) ReplaceSeasonalRates(ctx context.Context, id string, rates []models.SeasonalRate) error {
	return repo.vendorUpdate(ctx, id, bson.M{"pricing.seasonalRates": rates})
}

func (repo *MongoListingRepo) SetAvailability(ctx context.Context, id string, state models.AvailabilityState) error {
	return repo.vendorUpdate(ctx, id, bson.M{"availability": state})
}

// AppendBooking pushes a booking onto the listing's calendar if and only
// if the listing still carries expectedVersion. A matched count of zero
// with an existing listing means another writer claimed the range first.
func (repo *MongoListingRepo) AppendBooking(ctx context.Context, id string, expectedVersion int, b models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "version": expectedVersion},
		bson.M{
			"$push": bson.M{"availability.bookings": b},
			"$inc":  bson.M{"version": 1},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to append booking to listing %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return repo.classifyMiss(ctx, id)
	}
	return nil
}

// SetBookingStatus updates one embedded booking's status under the same
// version guard as AppendBooking.
func (repo *MongoListingRepo) SetBookingStatus(ctx context.Context, id string, expectedVersion int, bookingID string, status models.BookingStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": id, "version": expectedVersion, "availability.bookings.id": bookingID},
		bson.M{
			"$set": bson.M{
				"availability.bookings.$.status":    status,
				"availability.bookings.$.updatedAt": time.Now(),
				"updatedAt":                         time.Now(),
			},
			"$inc": bson.M{"version": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to update booking %s status: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return repo.classifyMiss(ctx, id)
	}
	return nil
}

// classifyMiss distinguishes a missing listing from a lost CAS race.
func (repo *MongoListingRepo) classifyMiss(ctx context.Context, id string) error {
	n, err := repo.coll.CountDocuments(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to classify update miss for listing %s: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return ErrVersionConflict
}
