package repositories

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
)

// ExamReader defines read operations for exam records.
type ExamReader interface {
	// ListRecentExams returns the newest graded entries.
	ListRecentExams(ctx context.Context, limit int) ([]domain.Exam, error)

	// ListAllExams returns every exam row, for backup export.
	ListAllExams(ctx context.Context) ([]domain.Exam, error)
}

// ExamWriter defines write operations for exam records.
type ExamWriter interface {
	// SaveExam inserts a graded subject entry. A duplicate exam ID surfaces
	// as apperrors.ErrDuplicate.
	SaveExam(ctx context.Context, exam domain.Exam) (*domain.Exam, error)
}

// ExamRepositoryFacade combines all exam repository interfaces.
type ExamRepositoryFacade interface {
	ExamReader
	ExamWriter
}
