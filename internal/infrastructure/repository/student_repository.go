package repository

import (
	"context"
	"errors"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	domainRepo "github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *gorm.DB) domainRepo.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *entity.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var student entity.Student
	err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &student, err
}

func (r *studentRepository) List(ctx context.Context, params *domainRepo.StudentFilterParams) ([]entity.Student, int64, error) {
	var students []entity.Student
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Student{})

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Grade != "" {
		query = query.Where("grade = ?", params.Grade)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&students).Error

	return students, total, err
}

func (r *studentRepository) Update(ctx context.Context, student *entity.Student) error {
	return r.db.WithContext(ctx).Save(student).Error
}

func (r *studentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Student{}, "id = ?", id).Error
}

func (r *studentRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Student{}).Count(&total).Error
	return total, err
}
