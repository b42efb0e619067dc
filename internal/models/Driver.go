// internal/models/driver.go
package models

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index"` // Foreign key to User; zero means no linked account
	VehicleID     uint   `json:"vehicle_id" gorm:"index"`
	User          *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
	// Email, Password and Role live on the User model, not here.
}
