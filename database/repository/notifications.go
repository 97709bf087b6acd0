package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"rentora/database"
	"rentora/models"
)

// NotificationStore persists processed booking notices for audit and for
// the external delivery channel to pick up.
type NotificationStore interface {
	Save(ctx context.Context, rec *models.NotificationRecord) error
}

// MongoNotificationStore implements NotificationStore on MongoDB.
type MongoNotificationStore struct {
	coll *mongo.Collection
}

func NewMongoNotificationStore() *MongoNotificationStore {
	return &MongoNotificationStore{coll: database.Collection("notifications")}
}

func (s *MongoNotificationStore) Save(ctx context.Context, rec *models.NotificationRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("failed to save notification record: %w", err)
	}
	return nil
}
