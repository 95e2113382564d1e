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

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Student").
		First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

// GetLatestPaid is the read half of the receipt number sequence: the most
// recently created Pagado payment, regardless of month or student.
func (r *paymentRepository) GetLatestPaid(ctx context.Context) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.db.WithContext(ctx).
		Where("status = ?", enum.PaymentStatusPaid).
		Order("created_at DESC").
		First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &payment, err
}

func (r *paymentRepository) List(ctx context.Context, params *domainRepo.PaymentFilterParams) ([]entity.Payment, error) {
	var payments []entity.Payment

	query := r.db.WithContext(ctx).Model(&entity.Payment{})

	if params.StudentID != nil {
		query = query.Where("student_id = ?", *params.StudentID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
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
		Find(&payments).Error

	return payments, err
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Payment{}, "id = ?", id).Error
}

func (r *paymentRepository) SummarizeByRange(ctx context.Context, startDate, endDate string) ([]domainRepo.PaymentSummaryRow, error) {
	var rows []domainRepo.PaymentSummaryRow

	query := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Select("status, payment_method, SUM(amount_cents) AS total_cents, COUNT(*) AS count")
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}

	err := query.
		Group("status, payment_method").
		Order("status, payment_method").
		Scan(&rows).Error

	return rows, err
}

// SumPaidByDateRange returns the total amount in cents and the record count
// of Pagado payments whose date falls within the inclusive range.
func (r *paymentRepository) SumPaidByDateRange(ctx context.Context, startDate, endDate string) (int64, int64, error) {
	var result struct {
		TotalCents int64
		Count      int64
	}

	query := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount_cents), 0) AS total_cents, COUNT(*) AS count").
		Where("status = ?", enum.PaymentStatusPaid)
	if startDate != "" {
		query = query.Where("date >= ?", startDate)
	}
	if endDate != "" {
		query = query.Where("date <= ?", endDate)
	}

	err := query.Scan(&result).Error
	return result.TotalCents, result.Count, err
}
