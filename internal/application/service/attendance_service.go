package service

import (
	"context"
	"time"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/pkg/apperror"
	"github.com/google/uuid"
)

// AttendanceService handles attendance-related operations
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, studentRepo repository.StudentRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
	}
}

// CreateAttendanceInput represents the create attendance input
type CreateAttendanceInput struct {
	StudentID uuid.UUID
	Date      string
	Status    enum.AttendanceStatus
	Notes     *string
}

// CreateAttendance creates an attendance record. A student may have at most
// one record per date; a second creation for the same pair is rejected.
func (s *AttendanceService) CreateAttendance(ctx context.Context, input *CreateAttendanceInput) (*entity.Attendance, error) {
	if input.Date == "" || input.Status == "" {
		return nil, apperror.NewBadRequestError("Student, date and status are required")
	}
	if _, err := time.Parse(dateLayout, input.Date); err != nil {
		return nil, apperror.NewBadRequestError("Invalid date, expected YYYY-MM-DD")
	}
	if !input.Status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid attendance status: " + input.Status.String())
	}

	student, err := s.studentRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	existing, err := s.attendanceRepo.GetByStudentAndDate(ctx, input.StudentID, input.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewBadRequestError("An attendance record already exists for this student on this date")
	}

	record := &entity.Attendance{
		StudentID: input.StudentID,
		Date:      input.Date,
		Status:    input.Status,
		Notes:     input.Notes,
	}

	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetAttendance retrieves an attendance record by ID
func (s *AttendanceService) GetAttendance(ctx context.Context, id uuid.UUID) (*entity.Attendance, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Attendance record")
	}
	return record, nil
}

// ListAttendance lists attendance records with filtering, most recent first
func (s *AttendanceService) ListAttendance(ctx context.Context, params *repository.AttendanceFilterParams) ([]entity.Attendance, error) {
	return s.attendanceRepo.List(ctx, params)
}

// UpdateAttendanceInput represents the update attendance input
type UpdateAttendanceInput struct {
	ID     uuid.UUID
	Date   *string
	Status *enum.AttendanceStatus
	Notes  *string
}

// UpdateAttendance updates an attendance record. Moving a record to a date
// that already has one for the same student is rejected.
func (s *AttendanceService) UpdateAttendance(ctx context.Context, input *UpdateAttendanceInput) (*entity.Attendance, error) {
	record, err := s.attendanceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Attendance record")
	}

	if input.Date != nil && *input.Date != record.Date {
		if _, err := time.Parse(dateLayout, *input.Date); err != nil {
			return nil, apperror.NewBadRequestError("Invalid date, expected YYYY-MM-DD")
		}
		existing, err := s.attendanceRepo.GetByStudentAndDate(ctx, record.StudentID, *input.Date)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewBadRequestError("An attendance record already exists for this student on this date")
		}
		record.Date = *input.Date
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid attendance status: " + input.Status.String())
		}
		record.Status = *input.Status
	}
	if input.Notes != nil {
		record.Notes = input.Notes
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteAttendance deletes an attendance record
func (s *AttendanceService) DeleteAttendance(ctx context.Context, id uuid.UUID) error {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return apperror.NewNotFoundError("Attendance record")
	}
	return s.attendanceRepo.Delete(ctx, id)
}
