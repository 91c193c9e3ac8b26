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

// searchLimit caps student search results, matching the original form's page.
const searchLimit = 50

type studentService struct {
	studentRepo portsrepo.StudentRepositoryFacade
}

// NewStudentService creates a student service over the given repository.
func NewStudentService(studentRepo portsrepo.StudentRepositoryFacade) portssvc.StudentSvcFacade {
	return &studentService{studentRepo: studentRepo}
}

var _ portssvc.StudentSvcFacade = (*studentService)(nil)

// RegisterStudent creates a student and its admission record atomically. The
// human-readable IDs are regenerated on collision, bounded by maxIDAttempts.
func (s *studentService) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*domain.Student, *domain.Admission, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Name == "" || req.Email == "" {
		return nil, nil, fmt.Errorf("%w: name and email are required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		student := domain.Student{
			StudentID:       utils.GenStudentID(""),
			Name:            req.Name,
			DOB:             req.DOB,
			Gender:          req.Gender,
			Email:           req.Email,
			Mobile:          req.Mobile,
			Program:         req.Program,
			Year:            req.Year,
			Department:      req.Department,
			Address:         req.Address,
			GuardianName:    req.GuardianName,
			GuardianContact: req.GuardianContact,
			CreatedAt:       now,
		}
		admission := domain.Admission{
			AdmissionID: utils.GenGenericID("ADM"),
			SubmittedAt: now,
			Source:      "Online",
			Status:      domain.AdmissionApproved,
		}

		createdStudent, createdAdmission, err := s.studentRepo.SaveStudentWithAdmission(ctx, student, admission)
		if err == nil {
			logger.Info("Admission recorded",
				slog.String("student_id", createdStudent.StudentID),
				slog.String("admission_id", createdAdmission.AdmissionID))
			return createdStudent, createdAdmission, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Identifier collision registering student", slog.Int("attempt", attempt+1))
			continue
		}
		return nil, nil, err
	}
	return nil, nil, fmt.Errorf("%w: could not assign unique identifiers after %d attempts", apperrors.ErrDuplicate, maxIDAttempts)
}

// GetStudentByRef resolves a student by student ID or email.
func (s *studentService) GetStudentByRef(ctx context.Context, ref string) (*domain.Student, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: student reference is required", apperrors.ErrValidation)
	}
	return s.studentRepo.FindStudentByRef(ctx, ref)
}

// SearchStudents matches name, student ID or email.
func (s *studentService) SearchStudents(ctx context.Context, query string) ([]domain.Student, error) {
	return s.studentRepo.SearchStudents(ctx, query, searchLimit)
}

// CountStudents returns the total student count for the dashboard.
func (s *studentService) CountStudents(ctx context.Context) (int64, error) {
	return s.studentRepo.CountStudents(ctx)
}
