package entity

import (
	"time"

	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem represents a school inventory item (equipment, supplies).
// Status is derived from the quantity when the item is created; updates keep
// whatever status the record carries unless the client sends a new one.
type InventoryItem struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name         string               `gorm:"size:255;not null;index" json:"name"`
	Category     string               `gorm:"size:100;not null;index" json:"category"`
	Quantity     int                  `gorm:"not null;default:0" json:"quantity"`
	Location     *string              `gorm:"size:255" json:"location,omitempty"`
	Status       enum.InventoryStatus `gorm:"size:20;not null;index" json:"status"`
	Description  *string              `gorm:"type:text" json:"description,omitempty"`
	SerialNumber *string              `gorm:"size:100" json:"serial_number,omitempty"`
	LastUpdated  string               `gorm:"size:10;not null" json:"last_updated"` // YYYY-MM-DD
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	DeletedAt    gorm.DeletedAt       `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}
