package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/davidmro/escolar-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment represents a tuition or fee payment recorded for a student.
//
// ReceiptNumber is assigned exactly once, when the payment is created with
// status Pagado. Later status updates never assign or revoke it.
type Payment struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	StudentID     uuid.UUID          `gorm:"type:uuid;not null;index" json:"student_id"`
	AmountCents   int64              `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Date          string             `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Concept       string             `gorm:"size:255;not null" json:"concept"`
	Status        enum.PaymentStatus `gorm:"size:20;not null;index" json:"status"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20" json:"payment_method"`
	ReceiptNumber *string            `gorm:"size:20;index" json:"receipt_number"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Student *Student `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (p Payment) MarshalJSON() ([]byte, error) {
	type Alias Payment
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(p),
		Amount: float64(p.AmountCents) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// GetAmountDecimal returns the amount as a decimal
func (p *Payment) GetAmountDecimal() float64 {
	return float64(p.AmountCents) / 100
}

// SetAmountFromDecimal sets the amount from a decimal value, rounding to
// the nearest cent so values like 19.99 survive the float conversion.
func (p *Payment) SetAmountFromDecimal(amount float64) {
	p.AmountCents = int64(math.Round(amount * 100))
}
