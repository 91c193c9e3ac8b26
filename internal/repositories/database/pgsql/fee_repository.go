package pgsql

import (
	"context"
	"errors"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portsrepo "github.com/campuscore/college_erp_app/internal/core/ports/repositories"
	"github.com/campuscore/college_erp_app/internal/models"
	"github.com/campuscore/college_erp_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const feeSelectColumns = `f.id, f.receipt_id, f.recorded_at, f.student_id_fk, f.name, s.student_id,
	       f.amount, f.payment_mode, f.transaction_id, f.invoice_path, f.balance_after,
	       f.purpose, f.notes, f.recorded_by`

type PgxFeeRepository struct {
	BaseRepository
}

func newPgxFeeRepository(pool *pgxpool.Pool) portsrepo.FeeRepositoryFacade {
	return &PgxFeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FeeRepositoryFacade = (*PgxFeeRepository)(nil)

// CreatePayment inserts a fee row, computing balance_after from the latest row
// for the same student inside one database transaction. The student row is
// locked FOR UPDATE first, so concurrent payments for one student serialize
// and cannot both read the same prior balance.
func (r *PgxFeeRepository) CreatePayment(ctx context.Context, fee domain.Fee) (*domain.Fee, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM students WHERE id = $1 FOR UPDATE;`, fee.StudentRefID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock student row for ledger write", err)
	}

	// Prior balance is the latest row's balance_after, base case 0.
	priorBalance := decimal.Zero
	err = tx.QueryRow(ctx, `
		SELECT balance_after FROM fees
		WHERE student_id_fk = $1
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1;
	`, fee.StudentRefID).Scan(&priorBalance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, "failed to read prior balance", err)
	}

	modelFee := mapping.ToModelFee(fee)
	modelFee.BalanceAfter = priorBalance.Sub(modelFee.Amount)

	insertQuery := `
		INSERT INTO fees (receipt_id, recorded_at, student_id_fk, name, amount, payment_mode,
		                  transaction_id, invoice_path, balance_after, purpose, notes, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		modelFee.ReceiptID,
		modelFee.RecordedAt,
		modelFee.StudentRefID,
		modelFee.StudentName,
		modelFee.Amount,
		modelFee.PaymentMode,
		modelFee.TransactionID,
		modelFee.InvoicePath,
		modelFee.BalanceAfter,
		modelFee.Purpose,
		modelFee.Notes,
		modelFee.RecordedBy,
	).Scan(&modelFee.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to insert fee "+modelFee.ReceiptID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	domainFee := mapping.ToDomainFee(modelFee)
	domainFee.StudentID = fee.StudentID
	return &domainFee, nil
}

// SetInvoicePath records the rendered receipt document's location.
func (r *PgxFeeRepository) SetInvoicePath(ctx context.Context, receiptID, path string) error {
	tag, err := r.Pool.Exec(ctx, `UPDATE fees SET invoice_path = $2 WHERE receipt_id = $1;`, receiptID, path)
	if err != nil {
		return apperrors.NewAppError(500, "failed to set invoice path for "+receiptID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func scanFee(row pgx.Row) (*models.Fee, error) {
	var m models.Fee
	err := row.Scan(
		&m.ID,
		&m.ReceiptID,
		&m.RecordedAt,
		&m.StudentRefID,
		&m.StudentName,
		&m.StudentID,
		&m.Amount,
		&m.PaymentMode,
		&m.TransactionID,
		&m.InvoicePath,
		&m.BalanceAfter,
		&m.Purpose,
		&m.Notes,
		&m.RecordedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindFeeByReceiptID retrieves a fee row by its unique receipt identifier.
func (r *PgxFeeRepository) FindFeeByReceiptID(ctx context.Context, receiptID string) (*domain.Fee, error) {
	query := `
		SELECT ` + feeSelectColumns + `
		FROM fees f JOIN students s ON s.id = f.student_id_fk
		WHERE f.receipt_id = $1;
	`
	m, err := scanFee(r.Pool.QueryRow(ctx, query, receiptID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fee by receipt ID "+receiptID, err)
	}
	d := mapping.ToDomainFee(*m)
	return &d, nil
}

func (r *PgxFeeRepository) queryFees(ctx context.Context, query string, args ...any) ([]domain.Fee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fees", err)
	}
	defer rows.Close()

	fees := []models.Fee{}
	for rows.Next() {
		m, err := scanFee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fee row", err)
		}
		fees = append(fees, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating fee rows", err)
	}
	return mapping.ToDomainFeeSlice(fees), nil
}

// ListRecentFees returns the newest fee rows across all students.
func (r *PgxFeeRepository) ListRecentFees(ctx context.Context, limit int) ([]domain.Fee, error) {
	query := `
		SELECT ` + feeSelectColumns + `
		FROM fees f JOIN students s ON s.id = f.student_id_fk
		ORDER BY f.recorded_at DESC, f.id DESC
		LIMIT $1;
	`
	return r.queryFees(ctx, query, limit)
}

// ListFeesByStudentRef returns a student's full payment history, newest first.
func (r *PgxFeeRepository) ListFeesByStudentRef(ctx context.Context, studentRefID int64) ([]domain.Fee, error) {
	query := `
		SELECT ` + feeSelectColumns + `
		FROM fees f JOIN students s ON s.id = f.student_id_fk
		WHERE f.student_id_fk = $1
		ORDER BY f.recorded_at DESC, f.id DESC;
	`
	return r.queryFees(ctx, query, studentRefID)
}

// SumFeeAmounts returns the total amount collected across all fee rows.
func (r *PgxFeeRepository) SumFeeAmounts(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0) FROM fees;`).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum fee amounts", err)
	}
	return total, nil
}

// ListAllFees returns every fee row, for backup export.
func (r *PgxFeeRepository) ListAllFees(ctx context.Context) ([]domain.Fee, error) {
	query := `
		SELECT ` + feeSelectColumns + `
		FROM fees f JOIN students s ON s.id = f.student_id_fk
		ORDER BY f.id;
	`
	return r.queryFees(ctx, query)
}
