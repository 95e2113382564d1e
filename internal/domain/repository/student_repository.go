package repository

import (
	"context"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/pkg/pagination"
	"github.com/google/uuid"
)

// StudentRepository defines the interface for student data operations
type StudentRepository interface {
	Create(ctx context.Context, student *entity.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error)
	List(ctx context.Context, params *StudentFilterParams) ([]entity.Student, int64, error)
	Update(ctx context.Context, student *entity.Student) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// StudentFilterParams contains filtering parameters for student queries
type StudentFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.StudentStatus
	Grade      string
}
