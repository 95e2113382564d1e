package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a payment was made. The set of methods a
// deployment accepts is configurable; AllPaymentMethods is the full set.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Efectivo"
	PaymentMethodCard     PaymentMethod = "Tarjeta"
	PaymentMethodTransfer PaymentMethod = "Transferencia"
)

// AllPaymentMethods lists every method known to the system.
func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is one of the known methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	}
	return false
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m = PaymentMethod(str)
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return string(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case string:
		*m = PaymentMethod(v)
	case []byte:
		*m = PaymentMethod(string(v))
	}
	return nil
}
