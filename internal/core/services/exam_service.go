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
)

type examService struct {
	examRepo    portsrepo.ExamRepositoryFacade
	studentRepo portsrepo.StudentReader
}

// NewExamService creates an exam service over the given repositories.
func NewExamService(examRepo portsrepo.ExamRepositoryFacade, studentRepo portsrepo.StudentReader) portssvc.ExamSvcFacade {
	return &examService{examRepo: examRepo, studentRepo: studentRepo}
}

var _ portssvc.ExamSvcFacade = (*examService)(nil)

// SaveMarks records a graded subject for a resolved student, deriving
// Pass/Fail from the marks.
func (s *examService) SaveMarks(ctx context.Context, req dto.SaveMarksRequest, gradedBy string) (*domain.Exam, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Marks < 0 || req.Marks > 100 {
		return nil, fmt.Errorf("%w: marks must be between 0 and 100", apperrors.ErrValidation)
	}

	student, err := s.studentRepo.FindStudentByRef(ctx, req.StudentRef)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		exam := domain.Exam{
			ExamID:       utils.GenGenericID("EXM"),
			StudentRefID: student.ID,
			StudentName:  student.Name,
			SubjectCode:  req.SubjectCode,
			SubjectName:  req.SubjectName,
			Marks:        req.Marks,
			Status:       domain.StatusForMarks(req.Marks),
			GradedAt:     time.Now().UTC(),
			GradedBy:     gradedBy,
			Notes:        req.Notes,
		}

		created, err := s.examRepo.SaveExam(ctx, exam)
		if err == nil {
			logger.Info("Marks saved",
				slog.String("exam_id", created.ExamID),
				slog.String("student_id", student.StudentID),
				slog.String("subject", req.SubjectCode),
				slog.String("status", string(created.Status)))
			return created, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Exam ID collision, regenerating", slog.Int("attempt", attempt+1))
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: could not assign a unique exam ID after %d attempts", apperrors.ErrDuplicate, maxIDAttempts)
}

// ListRecentExams returns the newest graded entries.
func (s *examService) ListRecentExams(ctx context.Context, limit int) ([]domain.Exam, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.examRepo.ListRecentExams(ctx, limit)
}
