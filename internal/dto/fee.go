package dto

import (
	"time"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest is the manual payment form payload.
type RecordPaymentRequest struct {
	StudentRef    string          `json:"studentRef" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMode   string          `json:"paymentMode" binding:"required"`
	Purpose       string          `json:"purpose"`
	TransactionID string          `json:"transactionID"`
	Notes         string          `json:"notes"`
}

// RecordPaymentInput carries a payment into the fee service. Both the manual
// path and the gateway receiver funnel through it; they differ only in
// PaymentMode, RecordedBy and RenderReceipt.
type RecordPaymentInput struct {
	StudentRef    string
	Amount        decimal.Decimal
	PaymentMode   domain.PaymentMode
	Purpose       string
	TransactionID string
	Notes         string
	RecordedBy    string
	RenderReceipt bool
}

// FeeResponse is the API representation of a ledger row.
type FeeResponse struct {
	ReceiptID     string          `json:"receiptID"`
	StudentID     string          `json:"studentID"`
	StudentName   string          `json:"studentName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"paymentMode"`
	TransactionID string          `json:"transactionID"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Purpose       string          `json:"purpose"`
	InvoicePath   *string         `json:"invoicePath"`
	RecordedAt    time.Time       `json:"recordedAt"`
	RecordedBy    string          `json:"recordedBy"`
}

// RecordPaymentResponse confirms a recorded payment. ReceiptWarning is set
// when the ledger write committed but the receipt document could not be
// rendered.
type RecordPaymentResponse struct {
	Fee            FeeResponse `json:"fee"`
	ReceiptWarning string      `json:"receiptWarning,omitempty"`
}

// ToFeeResponse maps a domain fee to its API shape.
func ToFeeResponse(f *domain.Fee) FeeResponse {
	return FeeResponse{
		ReceiptID:     f.ReceiptID,
		StudentID:     f.StudentID,
		StudentName:   f.StudentName,
		Amount:        f.Amount,
		PaymentMode:   string(f.PaymentMode),
		TransactionID: f.TransactionID,
		BalanceAfter:  f.BalanceAfter,
		Purpose:       f.Purpose,
		InvoicePath:   f.InvoicePath,
		RecordedAt:    f.RecordedAt,
		RecordedBy:    f.RecordedBy,
	}
}

// ToFeeResponseSlice maps a slice of domain fees.
func ToFeeResponseSlice(fees []domain.Fee) []FeeResponse {
	out := make([]FeeResponse, len(fees))
	for i := range fees {
		out[i] = ToFeeResponse(&fees[i])
	}
	return out
}
