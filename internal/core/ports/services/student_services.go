package services

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/dto"
)

// StudentSvcFacade exposes admission and student lookup operations.
type StudentSvcFacade interface {
	// RegisterStudent creates a student and its admission record atomically,
	// generating the human-readable IDs and retrying on collision.
	RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*domain.Student, *domain.Admission, error)

	// GetStudentByRef resolves a student by student ID or email.
	GetStudentByRef(ctx context.Context, ref string) (*domain.Student, error)

	// SearchStudents matches name, student ID or email.
	SearchStudents(ctx context.Context, query string) ([]domain.Student, error)

	// CountStudents returns the total student count for the dashboard.
	CountStudents(ctx context.Context) (int64, error)
}
