package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"fleet_docs/internal/models"
)

// DocumentStore is the gorm-backed document store.
type DocumentStore struct {
	db *gorm.DB
}

func NewDocumentStore(db *gorm.DB) *DocumentStore {
	return &DocumentStore{db: db}
}

func (s *DocumentStore) ByID(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	err := s.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Vehicle.Manager").
		Preload("Vehicle.Driver").
		Preload("Vehicle.Driver.User").
		First(&doc, id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentStore) ExpiringOnOrBefore(ctx context.Context, limit time.Time) ([]models.Document, error) {
	var docs []models.Document
	err := s.db.WithContext(ctx).
		Where("expiration_date IS NOT NULL AND expiration_date <= ?", limit).
		Preload("Vehicle").
		Preload("Vehicle.Manager").
		Preload("Vehicle.Driver").
		Preload("Vehicle.Driver.User").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// LinkEvent is set-once: the guard on calendar_event_id keeps an already
// linked document untouched, so repeated reminder creation never rebinds it.
func (s *DocumentStore) LinkEvent(ctx context.Context, docID, eventID uint) error {
	return s.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("id = ? AND calendar_event_id = 0", docID).
		Update("calendar_event_id", eventID).Error
}
