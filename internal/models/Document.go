// internal/models/document.go
package models

import (
	"time"

	"gorm.io/gorm"

	"fleet_docs/internal/policy"
)

// DocumentSourceType is the back-reference tag calendar events use to point
// at the document they were created for.
const DocumentSourceType = "vehicle_document"

// Document types a compliance document can be filed under.
const (
	DocTypePropertyCard        = "property_card"
	DocTypeCompulsoryInsurance = "compulsory_insurance"
	DocTypeTechnicalReview     = "technical_review"
	DocTypeInsurancePolicy     = "insurance_policy"
	DocTypeOther               = "other"
)

// ValidDocumentType reports whether t is one of the known document types.
func ValidDocumentType(t string) bool {
	switch t {
	case DocTypePropertyCard, DocTypeCompulsoryInsurance, DocTypeTechnicalReview,
		DocTypeInsurancePolicy, DocTypeOther:
		return true
	}
	return false
}

// Document is a compliance record (insurance, inspection, registration)
// attached to a vehicle, optionally carrying an expiration date and a file
// attachment stored in object storage.
type Document struct {
	gorm.Model
	Name           string     `json:"name"`
	DocumentType   string     `json:"document_type" gorm:"type:varchar(32)"`
	ExpirationDate *time.Time `json:"expiration_date" gorm:"type:date"`
	VehicleID      uint       `json:"vehicle_id" gorm:"not null;index"`
	Vehicle        Vehicle    `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE;" json:"vehicle,omitempty"`

	// Denormalized copy of the vehicle's plate, kept in sync on every save
	// and whenever the vehicle's plate changes.
	LicensePlate string `json:"license_plate"`

	AttachmentKey  string `json:"attachment_key"` // object storage key; empty means no attachment
	AttachmentName string `json:"attachment_name"`

	// Linked reminder event, set once and never overwritten. The event has
	// its own lifecycle: deleting the document does not delete it.
	CalendarEventID uint `json:"calendar_event_id"`

	// Stored derived fields, recomputed on every save.
	IsExpired    bool `json:"is_expired"`
	DaysToExpire int  `json:"days_to_expire"`
}

// BeforeSave recomputes the derived expiration fields and refreshes the
// denormalized license plate from the owning vehicle.
func (d *Document) BeforeSave(tx *gorm.DB) error {
	today := time.Now()
	d.IsExpired = policy.IsExpired(d.ExpirationDate, today)
	d.DaysToExpire = policy.DaysToExpire(d.ExpirationDate, today)

	if d.VehicleID != 0 {
		var plate string
		err := tx.Session(&gorm.Session{NewDB: true}).
			Model(&Vehicle{}).
			Select("license_plate").
			Where("id = ?", d.VehicleID).
			Scan(&plate).Error
		if err != nil {
			return err
		}
		d.LicensePlate = plate
	}
	return nil
}
