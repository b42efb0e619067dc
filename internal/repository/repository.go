// Package repository defines the store interfaces the document services are
// written against. Production implementations live in the postgres
// subpackage; testify mocks in mocks.
package repository

import (
	"context"
	"time"

	"fleet_docs/internal/models"
)

// DocumentStore loads and updates vehicle documents.
type DocumentStore interface {
	// ByID returns the document with its vehicle, driver and associated
	// users preloaded, or gorm.ErrRecordNotFound.
	ByID(ctx context.Context, id uint) (*models.Document, error)

	// ExpiringOnOrBefore returns every document whose expiration date is set
	// and on or before limit, vehicle relations preloaded. Already-expired
	// documents are included; documents without a date are not.
	ExpiringOnOrBefore(ctx context.Context, limit time.Time) ([]models.Document, error)

	// LinkEvent records eventID on the document if, and only if, no event is
	// linked yet. Linking is set-once; a second call is a no-op.
	LinkEvent(ctx context.Context, docID, eventID uint) error
}

// EventStore creates calendar events.
type EventStore interface {
	Create(ctx context.Context, event *models.CalendarEvent) error
}

// FeedStore appends entries to a vehicle's activity feed.
type FeedStore interface {
	Post(ctx context.Context, vehicleID uint, body string) error
}

// ActivityStore schedules follow-up to-dos for users.
type ActivityStore interface {
	Schedule(ctx context.Context, activity *models.Activity) error
}
