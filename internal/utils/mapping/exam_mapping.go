package mapping

import (
	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/models"
)

// ToModelExam converts a domain Exam to its persistence model.
func ToModelExam(d domain.Exam) models.Exam {
	return models.Exam{
		ID:           d.ID,
		ExamID:       d.ExamID,
		StudentRefID: d.StudentRefID,
		StudentName:  d.StudentName,
		SubjectCode:  d.SubjectCode,
		SubjectName:  d.SubjectName,
		Marks:        d.Marks,
		Status:       string(d.Status),
		GradedAt:     d.GradedAt,
		GradedBy:     d.GradedBy,
		Notes:        d.Notes,
	}
}

// ToDomainExam converts a persistence Exam to the domain type.
func ToDomainExam(m models.Exam) domain.Exam {
	return domain.Exam{
		ID:           m.ID,
		ExamID:       m.ExamID,
		StudentRefID: m.StudentRefID,
		StudentName:  m.StudentName,
		SubjectCode:  m.SubjectCode,
		SubjectName:  m.SubjectName,
		Marks:        m.Marks,
		Status:       domain.ExamStatus(m.Status),
		GradedAt:     m.GradedAt,
		GradedBy:     m.GradedBy,
		Notes:        m.Notes,
	}
}

// ToDomainExamSlice converts a slice of persistence Exams.
func ToDomainExamSlice(ms []models.Exam) []domain.Exam {
	ds := make([]domain.Exam, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExam(m)
	}
	return ds
}
