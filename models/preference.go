package models

import (
	"time"

	"gorm.io/datatypes"
)

// DeliveryPreference stores one sale's weekly delivery availability as an
// opaque JSON blob. The service layer normalizes the blob on read and writes
// it back wholesale; no partial updates touch the column.
type DeliveryPreference struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	OwnerID      string         `gorm:"uniqueIndex;not null" json:"ownerId"` // sale or customer record the preference belongs to
	Availability datatypes.JSON `gorm:"type:jsonb" json:"availability"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
