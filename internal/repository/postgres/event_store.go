package postgres

import (
	"context"

	"gorm.io/gorm"

	"fleet_docs/internal/models"
)

// EventStore is the gorm-backed calendar event store.
type EventStore struct {
	db *gorm.DB
}

func NewEventStore(db *gorm.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) Create(ctx context.Context, event *models.CalendarEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}
