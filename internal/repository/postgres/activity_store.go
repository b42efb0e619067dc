package postgres

import (
	"context"

	"gorm.io/gorm"

	"fleet_docs/internal/models"
)

// ActivityStore is the gorm-backed to-do store.
type ActivityStore struct {
	db *gorm.DB
}

func NewActivityStore(db *gorm.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) Schedule(ctx context.Context, activity *models.Activity) error {
	return s.db.WithContext(ctx).Create(activity).Error
}
