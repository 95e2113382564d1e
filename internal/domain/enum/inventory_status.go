package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InventoryStatus represents the stock state of an inventory item. It is
// derived from the quantity when the item is created, not re-derived on
// later updates.
type InventoryStatus string

const (
	InventoryStatusAvailable  InventoryStatus = "Disponible"
	InventoryStatusLowStock   InventoryStatus = "Bajo stock"
	InventoryStatusOutOfStock InventoryStatus = "Agotado"
)

// DeriveInventoryStatus computes the status for a quantity. Zero or negative
// means out of stock; anything at or below the threshold is low stock.
func DeriveInventoryStatus(quantity, lowStockThreshold int) InventoryStatus {
	if quantity <= 0 {
		return InventoryStatusOutOfStock
	}
	if quantity <= lowStockThreshold {
		return InventoryStatusLowStock
	}
	return InventoryStatusAvailable
}

func (s InventoryStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is one of the known statuses
func (s InventoryStatus) IsValid() bool {
	switch s {
	case InventoryStatusAvailable, InventoryStatusLowStock, InventoryStatusOutOfStock:
		return true
	}
	return false
}

func (s InventoryStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *InventoryStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = InventoryStatus(str)
	return nil
}

func (s InventoryStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *InventoryStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InventoryStatusAvailable
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = InventoryStatus(v)
	case []byte:
		*s = InventoryStatus(string(v))
	}
	return nil
}
