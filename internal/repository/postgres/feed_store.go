package postgres

import (
	"context"

	"gorm.io/gorm"

	"fleet_docs/internal/models"
)

// FeedStore is the gorm-backed vehicle activity feed.
type FeedStore struct {
	db *gorm.DB
}

func NewFeedStore(db *gorm.DB) *FeedStore {
	return &FeedStore{db: db}
}

func (s *FeedStore) Post(ctx context.Context, vehicleID uint, body string) error {
	post := models.FeedPost{VehicleID: vehicleID, Body: body}
	return s.db.WithContext(ctx).Create(&post).Error
}
