package service

import (
	"context"
	"strings"
	"testing"

	"github.com/davidmro/escolar-api/internal/domain/entity"
	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
	"github.com/davidmro/escolar-api/pkg/apperror"
	"github.com/google/uuid"
)

type stubStudentRepo struct {
	student    *entity.Student
	studentErr error
	count      int64
}

func (s *stubStudentRepo) Create(ctx context.Context, student *entity.Student) error {
	return nil
}

func (s *stubStudentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	return s.student, s.studentErr
}

func (s *stubStudentRepo) List(ctx context.Context, params *repository.StudentFilterParams) ([]entity.Student, int64, error) {
	return nil, 0, nil
}

func (s *stubStudentRepo) Update(ctx context.Context, student *entity.Student) error {
	return nil
}

func (s *stubStudentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubStudentRepo) Count(ctx context.Context) (int64, error) {
	return s.count, nil
}

func enrolledStudent() *entity.Student {
	return &entity.Student{
		ID:    uuid.New(),
		Name:  "Ana Marquez",
		Grade: "3A",
	}
}

func newPaymentService(paymentRepo *stubPaymentRepo, studentRepo *stubStudentRepo) *PaymentService {
	return NewPaymentService(paymentRepo, studentRepo, NewReceiptSequencer(paymentRepo, false), nil)
}

func TestCreatePayment_RequiresConcept(t *testing.T) {
	paymentRepo := &stubPaymentRepo{}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{student: enrolledStudent()})

	_, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StudentID: uuid.New(),
		Amount:    100,
		Concept:   "   ",
	})
	if err == nil {
		t.Fatalf("expected error for blank concept")
	}
	if len(paymentRepo.created) != 0 {
		t.Fatalf("expected no payment to be created, got %d", len(paymentRepo.created))
	}
}

func TestCreatePayment_RejectsNegativeAmount(t *testing.T) {
	paymentRepo := &stubPaymentRepo{}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{student: enrolledStudent()})

	_, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StudentID: uuid.New(),
		Amount:    -50,
		Concept:   "Colegiatura abril",
	})
	if err == nil {
		t.Fatalf("expected error for negative amount")
	}
}

func TestCreatePayment_UnknownStudent(t *testing.T) {
	paymentRepo := &stubPaymentRepo{}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{})

	_, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StudentID: uuid.New(),
		Amount:    100,
		Concept:   "Colegiatura abril",
	})
	appErr := apperror.GetAppError(err)
	if appErr.Code != 404 {
		t.Fatalf("expected 404 for unknown student, got %d", appErr.Code)
	}
	if len(paymentRepo.created) != 0 {
		t.Fatalf("expected no payment to be created")
	}
}

func TestCreatePayment_DefaultsToPendingWithoutReceipt(t *testing.T) {
	paymentRepo := &stubPaymentRepo{}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{student: enrolledStudent()})

	payment, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StudentID: uuid.New(),
		Amount:    150.50,
		Concept:   "Colegiatura abril",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != enum.PaymentStatusPending {
		t.Fatalf("expected default status Pendiente, got %s", payment.Status)
	}
	if payment.ReceiptNumber != nil {
		t.Fatalf("expected no receipt number for pending payment, got %s", *payment.ReceiptNumber)
	}
	if paymentRepo.getLatestCalls != 0 {
		t.Fatalf("expected no sequence query for pending payment")
	}
	if payment.AmountCents != 15050 {
		t.Fatalf("expected 15050 cents, got %d", payment.AmountCents)
	}
}

func TestCreatePayment_PaidGetsReceiptNumber(t *testing.T) {
	paymentRepo := &stubPaymentRepo{latest: paidPayment("REC-202404-002")}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{student: enrolledStudent()})

	payment, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StudentID:     uuid.New(),
		Amount:        200,
		Concept:       "Inscripcion",
		Status:        enum.PaymentStatusPaid,
		PaymentMethod: enum.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.ReceiptNumber == nil {
		t.Fatalf("expected a receipt number for paid payment")
	}
	if !strings.HasPrefix(*payment.ReceiptNumber, "REC-") {
		t.Fatalf("unexpected receipt number format: %s", *payment.ReceiptNumber)
	}
	if !strings.HasSuffix(*payment.ReceiptNumber, "-003") {
		t.Fatalf("expected counter 003, got %s", *payment.ReceiptNumber)
	}
	if len(paymentRepo.created) != 1 {
		t.Fatalf("expected exactly one insert, got %d", len(paymentRepo.created))
	}
}

func TestCreatePayment_RejectsDisabledMethod(t *testing.T) {
	paymentRepo := &stubPaymentRepo{}
	svc := NewPaymentService(
		paymentRepo,
		&stubStudentRepo{student: enrolledStudent()},
		NewReceiptSequencer(paymentRepo, false),
		[]string{"Efectivo"},
	)

	_, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StudentID:     uuid.New(),
		Amount:        100,
		Concept:       "Colegiatura abril",
		PaymentMethod: enum.PaymentMethodCard,
	})
	if err == nil {
		t.Fatalf("expected error for disabled payment method")
	}
}

func TestCreatePayment_RejectsBadDate(t *testing.T) {
	paymentRepo := &stubPaymentRepo{}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{student: enrolledStudent()})

	_, err := svc.CreatePayment(context.Background(), &CreatePaymentInput{
		StudentID: uuid.New(),
		Amount:    100,
		Concept:   "Colegiatura abril",
		Date:      "15/04/2024",
	})
	if err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestUpdatePayment_StatusChangeDoesNotAssignReceipt(t *testing.T) {
	existing := &entity.Payment{
		ID:      uuid.New(),
		Status:  enum.PaymentStatusPending,
		Concept: "Colegiatura abril",
	}
	paymentRepo := &stubPaymentRepo{getByID: existing, latest: paidPayment("REC-202404-005")}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{student: enrolledStudent()})

	paid := enum.PaymentStatusPaid
	payment, err := svc.UpdatePayment(context.Background(), &UpdatePaymentInput{
		ID:     existing.ID,
		Status: &paid,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Status != enum.PaymentStatusPaid {
		t.Fatalf("expected status Pagado, got %s", payment.Status)
	}
	if payment.ReceiptNumber != nil {
		t.Fatalf("receipt number must not be assigned on update, got %s", *payment.ReceiptNumber)
	}
	if paymentRepo.getLatestCalls != 0 {
		t.Fatalf("expected no sequence query during update")
	}
}

func TestDeletePayment_NotFound(t *testing.T) {
	paymentRepo := &stubPaymentRepo{}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{})

	err := svc.DeletePayment(context.Background(), uuid.New())
	appErr := apperror.GetAppError(err)
	if appErr.Code != 404 {
		t.Fatalf("expected 404, got %d", appErr.Code)
	}
}

func TestSummarizePayments_RejectsBadDate(t *testing.T) {
	paymentRepo := &stubPaymentRepo{}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{})

	_, err := svc.SummarizePayments(context.Background(), "2024-04-31x", "")
	if err == nil {
		t.Fatalf("expected error for malformed start date")
	}
}

func TestSummarizePayments_AggregatesTotals(t *testing.T) {
	paymentRepo := &stubPaymentRepo{
		summaryRows: []repository.PaymentSummaryRow{
			{Status: enum.PaymentStatusPaid, PaymentMethod: enum.PaymentMethodCash, TotalCents: 30000, Count: 3},
			{Status: enum.PaymentStatusPending, PaymentMethod: enum.PaymentMethodTransfer, TotalCents: 12550, Count: 1},
		},
	}
	svc := newPaymentService(paymentRepo, &stubStudentRepo{})

	summary, err := svc.SummarizePayments(context.Background(), "2024-04-01", "2024-04-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Summary) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(summary.Summary))
	}
	if summary.Totals.Total != 425.50 {
		t.Fatalf("expected total 425.50, got %v", summary.Totals.Total)
	}
	if summary.Totals.Count != 4 {
		t.Fatalf("expected count 4, got %d", summary.Totals.Count)
	}
}
