package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// StudentStatus represents a student's enrollment state
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "Activo"
	StudentStatusInactive  StudentStatus = "Inactivo"
	StudentStatusSuspended StudentStatus = "Suspendido"
)

func (s StudentStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is one of the known statuses
func (s StudentStatus) IsValid() bool {
	switch s {
	case StudentStatusActive, StudentStatusInactive, StudentStatusSuspended:
		return true
	}
	return false
}

func (s StudentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *StudentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = StudentStatus(str)
	return nil
}

func (s StudentStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *StudentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = StudentStatusActive
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = StudentStatus(v)
	case []byte:
		*s = StudentStatus(string(v))
	}
	return nil
}
