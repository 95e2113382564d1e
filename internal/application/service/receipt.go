package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/davidmro/escolar-api/internal/domain/repository"
)

const receiptPrefix = "REC"

// ReceiptSequencer assigns receipt numbers to payments that are created
// already paid. Numbers have the form REC-YYYYMM-NNN, where YYYYMM is the
// year and month of assignment and NNN a zero-padded sequence counter.
//
// The counter is derived by reading the most recently created paid payment
// and incrementing its sequence segment. That read and the later insert are
// not transactional: two concurrent creations can observe the same latest
// payment and end up with the same number. Deployments that need hard
// uniqueness must back this with a unique index on receipt_number and retry
// on conflict.
type ReceiptSequencer struct {
	paymentRepo  repository.PaymentRepository
	monthlyReset bool
}

// NewReceiptSequencer creates a sequencer. With monthlyReset the counter
// restarts at 001 whenever the latest paid payment carries a different
// year-month prefix; without it the counter keeps incrementing across month
// boundaries while the prefix in the output changes.
func NewReceiptSequencer(paymentRepo repository.PaymentRepository, monthlyReset bool) *ReceiptSequencer {
	return &ReceiptSequencer{
		paymentRepo:  paymentRepo,
		monthlyReset: monthlyReset,
	}
}

// Next returns the receipt number for a payment being created with the given
// status, or nil when the status is not Pagado. The year and month come from
// now, the moment of assignment; the payment's own date field plays no part.
// For any status other than Pagado no store query is made.
func (g *ReceiptSequencer) Next(ctx context.Context, status enum.PaymentStatus, now time.Time) (*string, error) {
	if status != enum.PaymentStatusPaid {
		return nil, nil
	}

	year := now.Year()
	month := int(now.Month())

	last, err := g.paymentRepo.GetLatestPaid(ctx)
	if err != nil {
		return nil, err
	}

	counter := 1
	if last != nil && last.ReceiptNumber != nil {
		if n, ok := parseReceiptCounter(*last.ReceiptNumber); ok {
			counter = n + 1
			if g.monthlyReset && !hasYearMonthPrefix(*last.ReceiptNumber, year, month) {
				counter = 1
			}
		}
	}

	number := fmt.Sprintf("%s-%d%02d-%03d", receiptPrefix, year, month, counter)
	return &number, nil
}

// parseReceiptCounter extracts the sequence segment of a receipt number.
// A malformed number yields ok=false and the caller restarts the counter.
func parseReceiptCounter(number string) (int, bool) {
	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}
	return n, true
}

// hasYearMonthPrefix reports whether a receipt number was assigned in the
// given year and month.
func hasYearMonthPrefix(number string, year, month int) bool {
	parts := strings.Split(number, "-")
	if len(parts) != 3 {
		return false
	}
	return parts[1] == fmt.Sprintf("%d%02d", year, month)
}
