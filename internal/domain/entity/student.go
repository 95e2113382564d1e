package entity

import (
	"time"

	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student represents an enrolled student
type Student struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name           string             `gorm:"size:255;not null" json:"name"`
	Email          *string            `gorm:"size:255" json:"email,omitempty"`
	Phone          *string            `gorm:"size:50" json:"phone,omitempty"`
	Grade          string             `gorm:"size:50;not null;index" json:"grade"`
	Status         enum.StudentStatus `gorm:"size:20;not null;index" json:"status"`
	AvatarURL      *string            `gorm:"size:255" json:"avatar_url,omitempty"`
	EnrollmentDate string             `gorm:"size:10;not null" json:"enrollment_date"` // YYYY-MM-DD
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	DeletedAt      gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Payments   []Payment    `gorm:"foreignKey:StudentID" json:"-"`
	Attendance []Attendance `gorm:"foreignKey:StudentID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new student
func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Student model
func (Student) TableName() string {
	return "students"
}
