package repository

import (
	"context"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/google/uuid"
)

// AttendanceRepository defines the interface for attendance data operations
type AttendanceRepository interface {
	Create(ctx context.Context, record *entity.Attendance) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error)
	// GetByStudentAndDate returns the record for a student on a given date,
	// or nil when none exists. Backs the one-record-per-day check.
	GetByStudentAndDate(ctx context.Context, studentID uuid.UUID, date string) (*entity.Attendance, error)
	List(ctx context.Context, params *AttendanceFilterParams) ([]entity.Attendance, error)
	Update(ctx context.Context, record *entity.Attendance) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByDateAndStatus(ctx context.Context, date string, status enum.AttendanceStatus) (int64, error)
	CountByDate(ctx context.Context, date string) (int64, error)
}

// AttendanceFilterParams contains filtering parameters for attendance queries.
// Date values are YYYY-MM-DD strings; bounds are inclusive.
type AttendanceFilterParams struct {
	StudentID *uuid.UUID
	Date      string
	Status    *enum.AttendanceStatus
	StartDate string
	EndDate   string
}
