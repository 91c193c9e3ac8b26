package repositories

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
)

// StudentReader defines read operations for student data.
type StudentReader interface {
	// FindStudentByRef resolves a student by human-readable student ID or
	// registered email, the two references the interactive flows accept.
	FindStudentByRef(ctx context.Context, ref string) (*domain.Student, error)

	// FindStudentByStudentID resolves strictly by the human-readable student ID.
	// The gateway receiver uses this; it never matches on email.
	FindStudentByStudentID(ctx context.Context, studentID string) (*domain.Student, error)

	// SearchStudents matches name, student ID or email case-insensitively.
	// An empty query returns up to limit students.
	SearchStudents(ctx context.Context, query string, limit int) ([]domain.Student, error)

	// CountStudents returns the total number of student records.
	CountStudents(ctx context.Context) (int64, error)

	// ListAllStudents returns every student row, for backup export.
	ListAllStudents(ctx context.Context) ([]domain.Student, error)

	// ListAllAdmissions returns every admission row, for backup export.
	ListAllAdmissions(ctx context.Context) ([]domain.Admission, error)
}

// StudentWriter defines write operations for student data.
type StudentWriter interface {
	// SaveStudentWithAdmission inserts the student and its admission record in
	// one database transaction. A duplicate student or admission ID surfaces
	// as apperrors.ErrDuplicate.
	SaveStudentWithAdmission(ctx context.Context, student domain.Student, admission domain.Admission) (*domain.Student, *domain.Admission, error)
}

// StudentRepositoryFacade combines all student repository interfaces.
type StudentRepositoryFacade interface {
	StudentReader
	StudentWriter
}
