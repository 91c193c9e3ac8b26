package services

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/shopspring/decimal"
)

// FeeSvcFacade exposes the fee ledger and receipt issuance operations.
type FeeSvcFacade interface {
	// RecordPayment appends a payment row for a student, computing the
	// running balance, then renders the receipt document when requested.
	// The ledger write commits even when rendering fails; in that case the
	// returned fee has a nil InvoicePath and the failure was logged.
	RecordPayment(ctx context.Context, input dto.RecordPaymentInput) (*domain.Fee, error)

	// RegenerateReceipt re-renders the receipt document for an existing fee
	// row and re-records its path. Recovery path for payments whose initial
	// render failed.
	RegenerateReceipt(ctx context.Context, receiptID string) (*domain.Fee, error)

	// GetFeeByReceiptID retrieves a single ledger row.
	GetFeeByReceiptID(ctx context.Context, receiptID string) (*domain.Fee, error)

	// ListRecentFees returns the newest payments across all students.
	ListRecentFees(ctx context.Context, limit int) ([]domain.Fee, error)

	// ListFeesByStudent returns a student's payment history, newest first.
	ListFeesByStudent(ctx context.Context, studentRef string) ([]domain.Fee, error)

	// TotalCollected sums all recorded payment amounts.
	TotalCollected(ctx context.Context) (decimal.Decimal, error)
}
