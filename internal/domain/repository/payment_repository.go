package repository

import (
	"context"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	// GetLatestPaid returns the most recently created payment with status
	// Pagado, ordered by created_at descending, or nil when none exists.
	// The lookup is global across months and students.
	GetLatestPaid(ctx context.Context) (*entity.Payment, error)
	List(ctx context.Context, params *PaymentFilterParams) ([]entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	SummarizeByRange(ctx context.Context, startDate, endDate string) ([]PaymentSummaryRow, error)
	SumPaidByDateRange(ctx context.Context, startDate, endDate string) (int64, int64, error)
}

// PaymentFilterParams contains filtering parameters for payment queries.
// Date bounds are inclusive YYYY-MM-DD strings.
type PaymentFilterParams struct {
	StudentID     *uuid.UUID
	Status        *enum.PaymentStatus
	PaymentMethod *enum.PaymentMethod
	StartDate     string
	EndDate       string
}

// PaymentSummaryRow is one aggregation bucket of the range summary
type PaymentSummaryRow struct {
	Status        enum.PaymentStatus `json:"status"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	TotalCents    int64              `json:"-"`
	Count         int64              `json:"count"`
}
