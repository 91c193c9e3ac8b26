package dto

import (
	"time"

	"github.com/campuscore/college_erp_app/internal/core/domain"
)

// SaveMarksRequest is the single-subject marks entry payload.
type SaveMarksRequest struct {
	StudentRef  string  `json:"studentRef" binding:"required"`
	SubjectCode string  `json:"subjectCode" binding:"required"`
	SubjectName string  `json:"subjectName" binding:"required"`
	Marks       float64 `json:"marks" binding:"min=0,max=100"`
	Notes       string  `json:"notes"`
}

// ExamResponse is the API representation of a graded entry.
type ExamResponse struct {
	ExamID      string    `json:"examID"`
	StudentName string    `json:"studentName"`
	SubjectCode string    `json:"subjectCode"`
	SubjectName string    `json:"subjectName"`
	Marks       float64   `json:"marks"`
	Status      string    `json:"status"`
	GradedAt    time.Time `json:"gradedAt"`
	GradedBy    string    `json:"gradedBy"`
}

// ToExamResponse maps a domain exam to its API shape.
func ToExamResponse(e *domain.Exam) ExamResponse {
	return ExamResponse{
		ExamID:      e.ExamID,
		StudentName: e.StudentName,
		SubjectCode: e.SubjectCode,
		SubjectName: e.SubjectName,
		Marks:       e.Marks,
		Status:      string(e.Status),
		GradedAt:    e.GradedAt,
		GradedBy:    e.GradedBy,
	}
}

// ToExamResponseSlice maps a slice of domain exams.
func ToExamResponseSlice(es []domain.Exam) []ExamResponse {
	out := make([]ExamResponse, len(es))
	for i := range es {
		out[i] = ToExamResponse(&es[i])
	}
	return out
}
