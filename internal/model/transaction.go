package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome is money received by the business.
	TypeIncome TransactionType = "income"
	// TypeExpense is money paid out by the business.
	TypeExpense TransactionType = "expense"
)

// PaymentStatus tracks how much of a transaction has actually been settled.
type PaymentStatus string

const (
	// PaymentPaid means the full amount changed hands.
	PaymentPaid PaymentStatus = "paid"
	// PaymentCredit means nothing has been paid yet.
	PaymentCredit PaymentStatus = "credit"
	// PaymentPartial means some but not all of the amount has been paid.
	PaymentPartial PaymentStatus = "partial"
)

// Transaction represents a single ledger entry. VendorID and ProjectID are
// optional references; deleting the referenced entity does not touch the
// transaction, so readers must tolerate ids that no longer resolve.
type Transaction struct {
	Date          time.Time       `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	ID            string          `json:"id"`
	Type          TransactionType `json:"type"`
	VendorID      string          `json:"vendorId,omitempty"`
	ProjectID     string          `json:"projectId,omitempty"`
	Category      string          `json:"category,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Description   string          `json:"description"`
	Notes         string          `json:"notes,omitempty"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	Amount        decimal.Decimal `json:"amount"`
	AmountPaid    decimal.Decimal `json:"amountPaid"`
}

// Outstanding returns the unpaid portion of the transaction. Persisted data
// that violates the payment invariants is clamped to zero rather than
// surfaced as a negative balance.
func (t *Transaction) Outstanding() decimal.Decimal {
	out := t.Amount.Sub(t.AmountPaid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// Normalize fills payment defaults: a missing status means paid, and the
// settled statuses pin AmountPaid to their definition.
func (t *Transaction) Normalize() {
	switch t.PaymentStatus {
	case PaymentCredit:
		t.AmountPaid = decimal.Zero
	case PaymentPartial:
		// AmountPaid stands as entered; validated at the write boundary.
	default:
		t.PaymentStatus = PaymentPaid
		t.AmountPaid = t.Amount
	}
}

// MarkPaid transitions the transaction to fully settled.
func (t *Transaction) MarkPaid() {
	t.PaymentStatus = PaymentPaid
	t.AmountPaid = t.Amount
}
