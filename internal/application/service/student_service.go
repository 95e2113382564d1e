package service

import (
	"context"
	"strings"
	"time"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/pkg/apperror"
	"github.com/davidmro/escolar-api/pkg/pagination"
	"github.com/google/uuid"
)

// StudentService handles student-related operations
type StudentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// CreateStudentInput represents the create student input
type CreateStudentInput struct {
	Name           string
	Email          *string
	Phone          *string
	Grade          string
	Status         enum.StudentStatus
	AvatarURL      *string
	EnrollmentDate string
}

// CreateStudent creates a new student
func (s *StudentService) CreateStudent(ctx context.Context, input *CreateStudentInput) (*entity.Student, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Grade) == "" {
		return nil, apperror.NewBadRequestError("Name and grade are required")
	}

	status := input.Status
	if status == "" {
		status = enum.StudentStatusActive
	}
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid student status: " + status.String())
	}

	enrollmentDate := input.EnrollmentDate
	if enrollmentDate == "" {
		enrollmentDate = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, enrollmentDate); err != nil {
		return nil, apperror.NewBadRequestError("Invalid enrollment date, expected YYYY-MM-DD")
	}

	student := &entity.Student{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Grade:          input.Grade,
		Status:         status,
		AvatarURL:      input.AvatarURL,
		EnrollmentDate: enrollmentDate,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudent retrieves a student by ID
func (s *StudentService) GetStudent(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}
	return student, nil
}

// ListStudents lists students with filtering, sorted by name
func (s *StudentService) ListStudents(ctx context.Context, params *repository.StudentFilterParams) (*pagination.PaginatedResult[entity.Student], error) {
	students, total, err := s.studentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(students, pag), nil
}

// UpdateStudentInput represents the update student input
type UpdateStudentInput struct {
	ID             uuid.UUID
	Name           *string
	Email          *string
	Phone          *string
	Grade          *string
	Status         *enum.StudentStatus
	AvatarURL      *string
	EnrollmentDate *string
}

// UpdateStudent updates a student
func (s *StudentService) UpdateStudent(ctx context.Context, input *UpdateStudentInput) (*entity.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewBadRequestError("Name must not be empty")
		}
		student.Name = *input.Name
	}
	if input.Email != nil {
		student.Email = input.Email
	}
	if input.Phone != nil {
		student.Phone = input.Phone
	}
	if input.Grade != nil {
		if strings.TrimSpace(*input.Grade) == "" {
			return nil, apperror.NewBadRequestError("Grade must not be empty")
		}
		student.Grade = *input.Grade
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid student status: " + input.Status.String())
		}
		student.Status = *input.Status
	}
	if input.AvatarURL != nil {
		student.AvatarURL = input.AvatarURL
	}
	if input.EnrollmentDate != nil {
		if _, err := time.Parse(dateLayout, *input.EnrollmentDate); err != nil {
			return nil, apperror.NewBadRequestError("Invalid enrollment date, expected YYYY-MM-DD")
		}
		student.EnrollmentDate = *input.EnrollmentDate
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent deletes a student
func (s *StudentService) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return apperror.NewNotFoundError("Student")
	}
	return s.studentRepo.Delete(ctx, id)
}
