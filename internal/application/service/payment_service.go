package service

import (
	"context"
	"strings"
	"time"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/pkg/apperror"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// PaymentService handles payment-related operations
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	studentRepo repository.StudentRepository
	sequencer   *ReceiptSequencer
	methods     map[enum.PaymentMethod]bool
}

// NewPaymentService creates a new payment service. enabledMethods restricts
// which payment methods are accepted; an empty list enables all of them.
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	studentRepo repository.StudentRepository,
	sequencer *ReceiptSequencer,
	enabledMethods []string,
) *PaymentService {
	methods := make(map[enum.PaymentMethod]bool)
	if len(enabledMethods) == 0 {
		for _, m := range enum.AllPaymentMethods() {
			methods[m] = true
		}
	} else {
		for _, m := range enabledMethods {
			methods[enum.PaymentMethod(m)] = true
		}
	}

	return &PaymentService{
		paymentRepo: paymentRepo,
		studentRepo: studentRepo,
		sequencer:   sequencer,
		methods:     methods,
	}
}

// CreatePaymentInput represents the create payment input
type CreatePaymentInput struct {
	StudentID     uuid.UUID
	Amount        float64
	Concept       string
	Status        enum.PaymentStatus
	PaymentMethod enum.PaymentMethod
	Date          string
}

// CreatePayment records a new payment. When the status is Pagado a receipt
// number is assigned before the insert so both land in a single write; a
// store failure at either step leaves no record behind. Any receipt number
// supplied by the client is ignored.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	if strings.TrimSpace(input.Concept) == "" {
		return nil, apperror.NewBadRequestError("Student, amount and concept are required")
	}
	if input.Amount < 0 {
		return nil, apperror.NewBadRequestError("Amount must not be negative")
	}

	status := input.Status
	if status == "" {
		status = enum.PaymentStatusPending
	}
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid payment status: " + status.String())
	}

	if input.PaymentMethod != "" {
		if !input.PaymentMethod.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment method: " + input.PaymentMethod.String())
		}
		if !s.methods[input.PaymentMethod] {
			return nil, apperror.NewBadRequestError("Payment method not accepted: " + input.PaymentMethod.String())
		}
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperror.NewBadRequestError("Invalid date, expected YYYY-MM-DD")
	}

	student, err := s.studentRepo.GetByID(ctx, input.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperror.NewNotFoundError("Student")
	}

	receiptNumber, err := s.sequencer.Next(ctx, status, time.Now())
	if err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		StudentID:     input.StudentID,
		Date:          date,
		Concept:       input.Concept,
		Status:        status,
		PaymentMethod: input.PaymentMethod,
		ReceiptNumber: receiptNumber,
	}
	payment.SetAmountFromDecimal(input.Amount)

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// GetPayment retrieves a payment by ID
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// ListPayments lists payments with filtering, most recent date first
func (s *PaymentService) ListPayments(ctx context.Context, params *repository.PaymentFilterParams) ([]entity.Payment, error) {
	return s.paymentRepo.List(ctx, params)
}

// UpdatePaymentInput represents the update payment input. The receipt number
// is deliberately absent: it is a creation-time decision and is never
// re-derived or revoked, not even when the status changes.
type UpdatePaymentInput struct {
	ID            uuid.UUID
	Amount        *float64
	Concept       *string
	Status        *enum.PaymentStatus
	PaymentMethod *enum.PaymentMethod
	Date          *string
}

// UpdatePayment updates a payment
func (s *PaymentService) UpdatePayment(ctx context.Context, input *UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, apperror.NewBadRequestError("Amount must not be negative")
		}
		payment.SetAmountFromDecimal(*input.Amount)
	}
	if input.Concept != nil {
		if strings.TrimSpace(*input.Concept) == "" {
			return nil, apperror.NewBadRequestError("Concept must not be empty")
		}
		payment.Concept = *input.Concept
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment status: " + input.Status.String())
		}
		payment.Status = *input.Status
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid payment method: " + input.PaymentMethod.String())
		}
		payment.PaymentMethod = *input.PaymentMethod
	}
	if input.Date != nil {
		if _, err := time.Parse(dateLayout, *input.Date); err != nil {
			return nil, apperror.NewBadRequestError("Invalid date, expected YYYY-MM-DD")
		}
		payment.Date = *input.Date
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// DeletePayment deletes a payment. No cascading happens; the student and any
// other records stay untouched.
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}
	return s.paymentRepo.Delete(ctx, id)
}

// PaymentRangeSummary aggregates payments over a date range
type PaymentRangeSummary struct {
	Period struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"period"`
	Summary []PaymentSummaryBucket `json:"summary"`
	Totals  struct {
		Total float64 `json:"total"`
		Count int64   `json:"count"`
	} `json:"totals"`
}

// PaymentSummaryBucket is one status/method bucket with the amount as decimal
type PaymentSummaryBucket struct {
	Status        enum.PaymentStatus `json:"status"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	Total         float64            `json:"total"`
	Count         int64              `json:"count"`
}

// SummarizePayments returns totals and counts grouped by status and method
// for payments whose date falls within the inclusive range.
func (s *PaymentService) SummarizePayments(ctx context.Context, startDate, endDate string) (*PaymentRangeSummary, error) {
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, d); err != nil {
			return nil, apperror.NewBadRequestError("Invalid date, expected YYYY-MM-DD")
		}
	}

	rows, err := s.paymentRepo.SummarizeByRange(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary := &PaymentRangeSummary{}
	summary.Period.StartDate = startDate
	summary.Period.EndDate = endDate
	summary.Summary = make([]PaymentSummaryBucket, 0, len(rows))

	for _, row := range rows {
		summary.Summary = append(summary.Summary, PaymentSummaryBucket{
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			Total:         float64(row.TotalCents) / 100,
			Count:         row.Count,
		})
		summary.Totals.Total += float64(row.TotalCents) / 100
		summary.Totals.Count += row.Count
	}

	return summary, nil
}
