package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fee is the persistence model for the fees ledger table. StudentName and
// StudentID are denormalized from the joined students row on reads.
type Fee struct {
	ID            int64
	ReceiptID     string
	RecordedAt    time.Time
	StudentRefID  int64
	StudentName   string
	StudentID     string
	Amount        decimal.Decimal
	PaymentMode   string
	TransactionID string
	InvoicePath   *string
	BalanceAfter  decimal.Decimal
	Purpose       string
	Notes         string
	RecordedBy    string
}
