// internal/models/feed_post.go
package models

import (
	"gorm.io/gorm"
)

// FeedPost is one entry on a vehicle's activity feed. The expiration sweep
// posts here for every document inside the notification horizon.
type FeedPost struct {
	gorm.Model
	VehicleID uint   `json:"vehicle_id" gorm:"index"`
	Body      string `json:"body"`
}
