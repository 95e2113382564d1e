package entity

import (
	"time"

	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attendance represents a single attendance record for a student on a date.
// At most one record may exist per (student, date) pair.
type Attendance struct {
	ID        uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	StudentID uuid.UUID             `gorm:"type:uuid;not null;index:idx_attendance_student_date,unique" json:"student_id"`
	Date      string                `gorm:"size:10;not null;index:idx_attendance_student_date,unique" json:"date"` // YYYY-MM-DD
	Status    enum.AttendanceStatus `gorm:"size:20;not null;index" json:"status"`
	Notes     *string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
	DeletedAt gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// BeforeCreate generates a UUID before creating a new attendance record
func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Attendance model
func (Attendance) TableName() string {
	return "attendance"
}
