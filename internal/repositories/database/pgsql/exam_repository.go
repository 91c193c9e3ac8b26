package pgsql

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portsrepo "github.com/campuscore/college_erp_app/internal/core/ports/repositories"
	"github.com/campuscore/college_erp_app/internal/models"
	"github.com/campuscore/college_erp_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExamRepository struct {
	BaseRepository
}

func newPgxExamRepository(pool *pgxpool.Pool) portsrepo.ExamRepositoryFacade {
	return &PgxExamRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExamRepositoryFacade = (*PgxExamRepository)(nil)

// SaveExam inserts a graded subject entry.
func (r *PgxExamRepository) SaveExam(ctx context.Context, exam domain.Exam) (*domain.Exam, error) {
	m := mapping.ToModelExam(exam)
	query := `
		INSERT INTO exams (exam_id, student_id_fk, subject_code, subject_name, marks, status,
		                   graded_at, graded_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.ExamID,
		m.StudentRefID,
		m.SubjectCode,
		m.SubjectName,
		m.Marks,
		m.Status,
		m.GradedAt,
		m.GradedBy,
		m.Notes,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to insert exam "+m.ExamID, err)
	}

	d := mapping.ToDomainExam(m)
	d.StudentName = exam.StudentName
	return &d, nil
}

func (r *PgxExamRepository) queryExams(ctx context.Context, query string, args ...any) ([]domain.Exam, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query exams", err)
	}
	defer rows.Close()

	exams := []models.Exam{}
	for rows.Next() {
		var m models.Exam
		err := rows.Scan(
			&m.ID,
			&m.ExamID,
			&m.StudentRefID,
			&m.StudentName,
			&m.SubjectCode,
			&m.SubjectName,
			&m.Marks,
			&m.Status,
			&m.GradedAt,
			&m.GradedBy,
			&m.Notes,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exam row", err)
		}
		exams = append(exams, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exam rows", err)
	}
	return mapping.ToDomainExamSlice(exams), nil
}

// ListRecentExams returns the newest graded entries.
func (r *PgxExamRepository) ListRecentExams(ctx context.Context, limit int) ([]domain.Exam, error) {
	query := `
		SELECT e.id, e.exam_id, e.student_id_fk, s.name, e.subject_code, e.subject_name,
		       e.marks, e.status, e.graded_at, e.graded_by, e.notes
		FROM exams e JOIN students s ON s.id = e.student_id_fk
		ORDER BY e.graded_at DESC, e.id DESC
		LIMIT $1;
	`
	return r.queryExams(ctx, query, limit)
}

// ListAllExams returns every exam row, for backup export.
func (r *PgxExamRepository) ListAllExams(ctx context.Context) ([]domain.Exam, error) {
	query := `
		SELECT e.id, e.exam_id, e.student_id_fk, s.name, e.subject_code, e.subject_name,
		       e.marks, e.status, e.graded_at, e.graded_by, e.notes
		FROM exams e JOIN students s ON s.id = e.student_id_fk
		ORDER BY e.id;
	`
	return r.queryExams(ctx, query)
}
