package pgsql

import (
	"fmt"
	"testing"
	"time"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// SaveStudentWithAdmission hands the persistence models back through the
// mapping layer after commit. The mapping functions take struct values, so
// this exercises the exact conversion the repository performs.
func TestStudentAdmissionModelRoundTrip(t *testing.T) {
	student := domain.Student{
		ID:              7,
		StudentID:       "COLG26S12345",
		Name:            "Asha Verma",
		DOB:             "2006-04-12",
		Gender:          "F",
		Email:           "asha@example.com",
		Mobile:          "9876543210",
		Program:         "B.Sc",
		Year:            "1",
		Department:      "Physics",
		Address:         "12 College Road",
		GuardianName:    "R Verma",
		GuardianContact: "9876500000",
		PhotoPath:       "photos/asha.jpg",
		CreatedAt:       time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
	admission := domain.Admission{
		ID:           3,
		AdmissionID:  "ADM-1756500000000-1234",
		StudentRefID: 7,
		SubmittedAt:  time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Source:       "Online",
		Documents:    "marksheet.pdf",
		Status:       domain.AdmissionApproved,
		Remarks:      "verified",
	}

	modelStudent := mapping.ToModelStudent(student)
	modelAdmission := mapping.ToModelAdmission(admission)

	assert.Equal(t, student, mapping.ToDomainStudent(modelStudent))
	assert.Equal(t, admission, mapping.ToDomainAdmission(modelAdmission))
}

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "students_student_id_key"}

	assert.True(t, isUniqueViolation(uniqueErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert student: %w", uniqueErr)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(fmt.Errorf("connection reset")))
}
