// internal/models/calendar_event.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// CalendarEvent is a reminder entry on the shared calendar. Events created
// for a document keep a back-reference (SourceType + SourceID) to it, but
// live independently: deleting the document leaves the event in place.
type CalendarEvent struct {
	gorm.Model
	Name   string    `json:"name"`
	Start  time.Time `json:"start"` // stored in UTC
	Stop   time.Time `json:"stop"`
	AllDay bool      `json:"all_day"`

	// Invited driver, zero when the vehicle has none assigned.
	AttendeeDriverID uint `json:"attendee_driver_id"`

	// Generic back-reference to the record the event was created for.
	SourceType string `json:"source_type" gorm:"index:idx_event_source"`
	SourceID   uint   `json:"source_id" gorm:"index:idx_event_source"`
}
