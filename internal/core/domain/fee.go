package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMode is the channel a fee payment arrived through.
type PaymentMode string

const (
	ModeCash       PaymentMode = "Cash"
	ModeUPI        PaymentMode = "UPI"
	ModeCard       PaymentMode = "Card"
	ModeNetbanking PaymentMode = "Netbanking"
	ModeGateway    PaymentMode = "Gateway"
)

// IsValid reports whether the payment mode is one of the enumerated channels.
func (m PaymentMode) IsValid() bool {
	switch m {
	case ModeCash, ModeUPI, ModeCard, ModeNetbanking, ModeGateway:
		return true
	}
	return false
}

// Fee is one payment event in the per-student ledger.
//
// BalanceAfter is debit-style: it holds the amount still owed after this
// payment, computed from the previous row's balance minus Amount (base case
// 0). Overpayment drives it negative; that is accepted. A Fee row is
// immutable once written except for InvoicePath, which the receipt renderer
// sets at most once after the insert commits.
type Fee struct {
	ID            int64           `json:"-"`
	ReceiptID     string          `json:"receiptID"`
	RecordedAt    time.Time       `json:"recordedAt"`
	StudentRefID  int64           `json:"-"`
	StudentName   string          `json:"studentName"`
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   PaymentMode     `json:"paymentMode"`
	TransactionID string          `json:"transactionID"`
	InvoicePath   *string         `json:"invoicePath"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Purpose       string          `json:"purpose"`
	Notes         string          `json:"notes"`
	RecordedBy    string          `json:"recordedBy"`
}
