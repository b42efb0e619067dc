// internal/models/activity.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// Activity is a to-do task assigned to a user for follow-up, due on the
// related document's expiration date.
type Activity struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"index"` // assignee
	DocumentID uint      `json:"document_id" gorm:"index"`
	VehicleID  uint      `json:"vehicle_id"`
	Summary    string    `json:"summary"`
	DueDate    time.Time `json:"due_date" gorm:"type:date"`
	Done       bool      `json:"done" gorm:"default:false"`
}
