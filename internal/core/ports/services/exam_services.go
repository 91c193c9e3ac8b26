package services

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/dto"
)

// ExamSvcFacade exposes marks entry operations.
type ExamSvcFacade interface {
	// SaveMarks records a graded subject for a resolved student, deriving
	// Pass/Fail from the marks.
	SaveMarks(ctx context.Context, req dto.SaveMarksRequest, gradedBy string) (*domain.Exam, error)

	// ListRecentExams returns the newest graded entries.
	ListRecentExams(ctx context.Context, limit int) ([]domain.Exam, error)
}
