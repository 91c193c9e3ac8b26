package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portsrepo "github.com/campuscore/college_erp_app/internal/core/ports/repositories"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"
	"github.com/campuscore/college_erp_app/internal/utils"
	"github.com/shopspring/decimal"
)

// maxIDAttempts bounds regeneration of a colliding human-readable identifier
// before the collision is surfaced to the caller.
const maxIDAttempts = 3

// DefaultPurpose is used when a payment carries no purpose.
const DefaultPurpose = "Tuition"

// feeService implements the fee ledger and receipt issuance.
type feeService struct {
	feeRepo     portsrepo.FeeRepositoryFacade
	studentRepo portsrepo.StudentReader
	renderer    portssvc.ReceiptRenderer
}

// NewFeeService creates a fee service over the given repositories and renderer.
func NewFeeService(feeRepo portsrepo.FeeRepositoryFacade, studentRepo portsrepo.StudentReader, renderer portssvc.ReceiptRenderer) portssvc.FeeSvcFacade {
	return &feeService{
		feeRepo:     feeRepo,
		studentRepo: studentRepo,
		renderer:    renderer,
	}
}

var _ portssvc.FeeSvcFacade = (*feeService)(nil)

// resolveStudent maps a caller-supplied reference to a student row. Gateway
// notifications identify students strictly by the human-readable ID; the
// interactive path also accepts the registered email.
func (s *feeService) resolveStudent(ctx context.Context, ref string, mode domain.PaymentMode) (*domain.Student, error) {
	if mode == domain.ModeGateway {
		return s.studentRepo.FindStudentByStudentID(ctx, ref)
	}
	return s.studentRepo.FindStudentByRef(ctx, ref)
}

// RecordPayment appends a payment row for a student and computes its running
// balance. The ledger write commits first; receipt rendering is attempted
// afterwards and is allowed to fail without undoing the payment.
func (s *feeService) RecordPayment(ctx context.Context, input dto.RecordPaymentInput) (*domain.Fee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if input.StudentRef == "" {
		return nil, fmt.Errorf("%w: student reference is required", apperrors.ErrValidation)
	}
	if input.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative", apperrors.ErrValidation)
	}
	if !input.PaymentMode.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment mode %q", apperrors.ErrValidation, input.PaymentMode)
	}
	purpose := input.Purpose
	if purpose == "" {
		purpose = DefaultPurpose
	}

	student, err := s.resolveStudent(ctx, input.StudentRef, input.PaymentMode)
	if err != nil {
		return nil, err
	}

	var created *domain.Fee
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		receiptID := utils.GenGenericID("REC")
		transactionID := input.TransactionID
		if transactionID == "" {
			transactionID = receiptID
		}

		fee := domain.Fee{
			ReceiptID:     receiptID,
			RecordedAt:    time.Now().UTC(),
			StudentRefID:  student.ID,
			StudentName:   student.Name,
			StudentID:     student.StudentID,
			Amount:        input.Amount,
			PaymentMode:   input.PaymentMode,
			TransactionID: transactionID,
			Purpose:       purpose,
			Notes:         input.Notes,
			RecordedBy:    input.RecordedBy,
		}

		created, err = s.feeRepo.CreatePayment(ctx, fee)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Receipt ID collision, regenerating",
				slog.String("receipt_id", receiptID), slog.Int("attempt", attempt+1))
			continue
		}
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: could not assign a unique receipt ID after %d attempts", apperrors.ErrDuplicate, maxIDAttempts)
	}

	logger.Info("Payment recorded",
		slog.String("receipt_id", created.ReceiptID),
		slog.String("student_id", created.StudentID),
		slog.String("balance_after", created.BalanceAfter.String()))

	if input.RenderReceipt {
		s.renderAndAttach(ctx, created)
	}

	return created, nil
}

// renderAndAttach renders the receipt document and records its path on the
// fee row. Failures are downgraded to warnings: the payment stays recorded.
func (s *feeService) renderAndAttach(ctx context.Context, fee *domain.Fee) {
	logger := middleware.GetLoggerFromCtx(ctx)

	path, err := s.renderer.Render(*fee)
	if err != nil {
		logger.Warn("Receipt generation failed",
			slog.String("receipt_id", fee.ReceiptID), slog.String("error", err.Error()))
		return
	}
	if err := s.feeRepo.SetInvoicePath(ctx, fee.ReceiptID, path); err != nil {
		logger.Warn("Failed to record receipt path",
			slog.String("receipt_id", fee.ReceiptID), slog.String("error", err.Error()))
		return
	}
	fee.InvoicePath = &path
}

// RegenerateReceipt re-renders the document for an existing fee row.
// Unlike the record-time render, failures here propagate to the caller.
func (s *feeService) RegenerateReceipt(ctx context.Context, receiptID string) (*domain.Fee, error) {
	fee, err := s.feeRepo.FindFeeByReceiptID(ctx, receiptID)
	if err != nil {
		return nil, err
	}

	path, err := s.renderer.Render(*fee)
	if err != nil {
		return nil, err
	}
	if err := s.feeRepo.SetInvoicePath(ctx, receiptID, path); err != nil {
		return nil, err
	}
	fee.InvoicePath = &path
	return fee, nil
}

// GetFeeByReceiptID retrieves a single ledger row.
func (s *feeService) GetFeeByReceiptID(ctx context.Context, receiptID string) (*domain.Fee, error) {
	return s.feeRepo.FindFeeByReceiptID(ctx, receiptID)
}

// ListRecentFees returns the newest payments across all students.
func (s *feeService) ListRecentFees(ctx context.Context, limit int) ([]domain.Fee, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.feeRepo.ListRecentFees(ctx, limit)
}

// ListFeesByStudent returns a student's payment history, newest first.
func (s *feeService) ListFeesByStudent(ctx context.Context, studentRef string) ([]domain.Fee, error) {
	student, err := s.studentRepo.FindStudentByRef(ctx, studentRef)
	if err != nil {
		return nil, err
	}
	return s.feeRepo.ListFeesByStudentRef(ctx, student.ID)
}

// TotalCollected sums all recorded payment amounts.
func (s *feeService) TotalCollected(ctx context.Context) (decimal.Decimal, error) {
	return s.feeRepo.SumFeeAmounts(ctx)
}
