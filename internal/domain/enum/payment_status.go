package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentStatus represents the lifecycle tag on a payment. It is set by the
// caller at creation time, never derived.
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "Pagado"
	PaymentStatusPending   PaymentStatus = "Pendiente"
	PaymentStatusCancelled PaymentStatus = "Cancelado"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is one of the known statuses
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusCancelled:
		return true
	}
	return false
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = PaymentStatus(str)
	return nil
}

func (s PaymentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *PaymentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PaymentStatusPending
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = PaymentStatus(v)
	case []byte:
		*s = PaymentStatus(string(v))
	}
	return nil
}
