// internal/models/vehicle.go
package models

import (
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	Name         string `json:"name"`
	LicensePlate string `json:"license_plate" gorm:"index"`
	ManagerID    uint   `json:"manager_id"` // fleet manager's user id; zero means unassigned
	DriverID     uint   `json:"driver_id"`
	InService    bool   `json:"in_service" gorm:"default:true"`

	Manager *User   `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Driver  *Driver `gorm:"foreignKey:DriverID" json:"driver,omitempty"`

	Documents []Document `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE;" json:"documents,omitempty"`
	FeedPosts []FeedPost `gorm:"foreignKey:VehicleID" json:"feed_posts,omitempty"`
}
