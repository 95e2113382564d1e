package repository

import (
	"context"
	"errors"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	domainRepo "github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, record *entity.Attendance) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *attendanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error) {
	var record entity.Attendance
	err := r.db.WithContext(ctx).
		Preload("Student").
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *attendanceRepository) GetByStudentAndDate(ctx context.Context, studentID uuid.UUID, date string) (*entity.Attendance, error) {
	var record entity.Attendance
	err := r.db.WithContext(ctx).
		First(&record, "student_id = ? AND date = ?", studentID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *attendanceRepository) List(ctx context.Context, params *domainRepo.AttendanceFilterParams) ([]entity.Attendance, error) {
	var records []entity.Attendance

	query := r.db.WithContext(ctx).Model(&entity.Attendance{})

	if params.StudentID != nil {
		query = query.Where("student_id = ?", *params.StudentID)
	}
	if params.Date != "" {
		query = query.Where("date = ?", params.Date)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.StartDate != "" {
		query = query.Where("date >= ?", params.StartDate)
	}
	if params.EndDate != "" {
		query = query.Where("date <= ?", params.EndDate)
	}

	err := query.
		Preload("Student").
		Order("date DESC").
		Find(&records).Error

	return records, err
}

func (r *attendanceRepository) Update(ctx context.Context, record *entity.Attendance) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *attendanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Attendance{}, "id = ?", id).Error
}

func (r *attendanceRepository) CountByDateAndStatus(ctx context.Context, date string, status enum.AttendanceStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Attendance{}).
		Where("date = ? AND status = ?", date, status).
		Count(&total).Error
	return total, err
}

func (r *attendanceRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Attendance{}).
		Where("date = ?", date).
		Count(&total).Error
	return total, err
}
