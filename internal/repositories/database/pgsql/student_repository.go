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
)

const studentColumns = `id, student_id, name, dob, gender, email, mobile, program, year,
	       department, address, guardian_name, guardian_contact, photo_path, created_at`

type PgxStudentRepository struct {
	BaseRepository
}

func newPgxStudentRepository(pool *pgxpool.Pool) portsrepo.StudentRepositoryFacade {
	return &PgxStudentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StudentRepositoryFacade = (*PgxStudentRepository)(nil)

func scanStudent(row pgx.Row) (*models.Student, error) {
	var m models.Student
	err := row.Scan(
		&m.ID,
		&m.StudentID,
		&m.Name,
		&m.DOB,
		&m.Gender,
		&m.Email,
		&m.Mobile,
		&m.Program,
		&m.Year,
		&m.Department,
		&m.Address,
		&m.GuardianName,
		&m.GuardianContact,
		&m.PhotoPath,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveStudentWithAdmission inserts the student and its admission record in one
// database transaction. Either both rows land or neither does.
func (r *PgxStudentRepository) SaveStudentWithAdmission(ctx context.Context, student domain.Student, admission domain.Admission) (*domain.Student, *domain.Admission, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	modelStudent := mapping.ToModelStudent(student)
	studentQuery := `
		INSERT INTO students (student_id, name, dob, gender, email, mobile, program, year,
		                      department, address, guardian_name, guardian_contact, photo_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, studentQuery,
		modelStudent.StudentID,
		modelStudent.Name,
		modelStudent.DOB,
		modelStudent.Gender,
		modelStudent.Email,
		modelStudent.Mobile,
		modelStudent.Program,
		modelStudent.Year,
		modelStudent.Department,
		modelStudent.Address,
		modelStudent.GuardianName,
		modelStudent.GuardianContact,
		modelStudent.PhotoPath,
		modelStudent.CreatedAt,
	).Scan(&modelStudent.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, apperrors.ErrDuplicate
		}
		return nil, nil, apperrors.NewAppError(500, "failed to insert student "+modelStudent.StudentID, err)
	}

	modelAdmission := mapping.ToModelAdmission(admission)
	modelAdmission.StudentRefID = modelStudent.ID
	admissionQuery := `
		INSERT INTO admissions (admission_id, student_id_fk, submitted_at, source, documents, status, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, admissionQuery,
		modelAdmission.AdmissionID,
		modelAdmission.StudentRefID,
		modelAdmission.SubmittedAt,
		modelAdmission.Source,
		modelAdmission.Documents,
		modelAdmission.Status,
		modelAdmission.Remarks,
	).Scan(&modelAdmission.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, apperrors.ErrDuplicate
		}
		return nil, nil, apperrors.NewAppError(500, "failed to insert admission "+modelAdmission.AdmissionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	domainStudent := mapping.ToDomainStudent(modelStudent)
	domainAdmission := mapping.ToDomainAdmission(modelAdmission)
	return &domainStudent, &domainAdmission, nil
}

// FindStudentByRef resolves a student by human-readable student ID or email.
func (r *PgxStudentRepository) FindStudentByRef(ctx context.Context, ref string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1 OR email = $1 ORDER BY id LIMIT 1;`
	return r.findOne(ctx, query, ref)
}

// FindStudentByStudentID resolves strictly by the human-readable student ID.
func (r *PgxStudentRepository) FindStudentByStudentID(ctx context.Context, studentID string) (*domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1;`
	return r.findOne(ctx, query, studentID)
}

func (r *PgxStudentRepository) findOne(ctx context.Context, query string, arg any) (*domain.Student, error) {
	m, err := scanStudent(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find student", err)
	}
	d := mapping.ToDomainStudent(*m)
	return &d, nil
}

// SearchStudents matches name, student ID or email case-insensitively.
func (r *PgxStudentRepository) SearchStudents(ctx context.Context, query string, limit int) ([]domain.Student, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if query == "" {
		sql := `SELECT ` + studentColumns + ` FROM students ORDER BY id LIMIT $1;`
		rows, err = r.Pool.Query(ctx, sql, limit)
	} else {
		sql := `SELECT ` + studentColumns + ` FROM students
			WHERE name ILIKE $1 OR student_id ILIKE $1 OR email ILIKE $1
			ORDER BY id LIMIT $2;`
		rows, err = r.Pool.Query(ctx, sql, "%"+query+"%", limit)
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search students", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		m, err := scanStudent(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan student row", err)
		}
		students = append(students, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating student rows", err)
	}
	return mapping.ToDomainStudentSlice(students), nil
}

// CountStudents returns the total number of student records.
func (r *PgxStudentRepository) CountStudents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM students;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count students", err)
	}
	return count, nil
}

// ListAllStudents returns every student row, for backup export.
func (r *PgxStudentRepository) ListAllStudents(ctx context.Context) ([]domain.Student, error) {
	return r.SearchStudents(ctx, "", 1<<31-1)
}

// ListAllAdmissions returns every admission row, for backup export.
func (r *PgxStudentRepository) ListAllAdmissions(ctx context.Context) ([]domain.Admission, error) {
	query := `
		SELECT id, admission_id, student_id_fk, submitted_at, source, documents, status, remarks
		FROM admissions ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query admissions", err)
	}
	defer rows.Close()

	admissions := []domain.Admission{}
	for rows.Next() {
		var m models.Admission
		err := rows.Scan(&m.ID, &m.AdmissionID, &m.StudentRefID, &m.SubmittedAt, &m.Source, &m.Documents, &m.Status, &m.Remarks)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan admission row", err)
		}
		admissions = append(admissions, mapping.ToDomainAdmission(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating admission rows", err)
	}
	return admissions, nil
}
