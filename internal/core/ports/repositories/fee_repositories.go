package repositories

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FeeReader defines read operations for the fee ledger.
type FeeReader interface {
	// FindFeeByReceiptID retrieves a fee row by its unique receipt identifier.
	FindFeeByReceiptID(ctx context.Context, receiptID string) (*domain.Fee, error)

	// ListRecentFees returns the newest fee rows across all students.
	ListRecentFees(ctx context.Context, limit int) ([]domain.Fee, error)

	// ListFeesByStudentRef returns a student's full payment history, newest first.
	ListFeesByStudentRef(ctx context.Context, studentRefID int64) ([]domain.Fee, error)

	// SumFeeAmounts returns the total amount collected across all fee rows.
	SumFeeAmounts(ctx context.Context) (decimal.Decimal, error)

	// ListAllFees returns every fee row, for backup export.
	ListAllFees(ctx context.Context) ([]domain.Fee, error)
}

// FeeWriter defines write operations for the fee ledger.
type FeeWriter interface {
	// CreatePayment inserts a fee row, computing BalanceAfter from the latest
	// row for the same student inside a single database transaction that
	// locks the student row. This serializes ledger writes per student, so
	// two concurrent payments cannot both read the same prior balance.
	// The returned fee carries the computed balance and assigned row ID.
	// A duplicate receipt ID surfaces as apperrors.ErrDuplicate.
	CreatePayment(ctx context.Context, fee domain.Fee) (*domain.Fee, error)

	// SetInvoicePath records the rendered receipt document's location on the
	// fee row. This is the only mutation allowed after insertion.
	SetInvoicePath(ctx context.Context, receiptID, path string) error
}

// FeeRepositoryFacade combines all fee repository interfaces.
type FeeRepositoryFacade interface {
	FeeReader
	FeeWriter
}
