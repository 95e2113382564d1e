package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AttendanceStatus represents a student's attendance for a single day
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Presente"
	AttendanceStatusAbsent  AttendanceStatus = "Ausente"
	AttendanceStatusLate    AttendanceStatus = "Retardo"
)

func (s AttendanceStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is one of the known statuses
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate:
		return true
	}
	return false
}

func (s AttendanceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *AttendanceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = AttendanceStatus(str)
	return nil
}

func (s AttendanceStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *AttendanceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = AttendanceStatusAbsent
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = AttendanceStatus(v)
	case []byte:
		*s = AttendanceStatus(string(v))
	}
	return nil
}
