package dto

import (
	"time"

	"github.com/campuscore/college_erp_app/internal/core/domain"
)

// RegisterStudentRequest is the admission form payload.
type RegisterStudentRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	Mobile          string `json:"mobile"`
	Program         string `json:"program"`
	Year            string `json:"year"`
	Department      string `json:"department"`
	Address         string `json:"address"`
	GuardianName    string `json:"guardianName"`
	GuardianContact string `json:"guardianContact"`
}

// StudentResponse is the API representation of a student.
type StudentResponse struct {
	StudentID  string    `json:"studentID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Mobile     string    `json:"mobile"`
	Program    string    `json:"program"`
	Year       string    `json:"year"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RegisterStudentResponse confirms an admission.
type RegisterStudentResponse struct {
	Student     StudentResponse `json:"student"`
	AdmissionID string          `json:"admissionID"`
	Status      string          `json:"status"`
}

// ToStudentResponse maps a domain student to its API shape.
func ToStudentResponse(s *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID:  s.StudentID,
		Name:       s.Name,
		Email:      s.Email,
		Mobile:     s.Mobile,
		Program:    s.Program,
		Year:       s.Year,
		Department: s.Department,
		CreatedAt:  s.CreatedAt,
	}
}

// ToStudentResponseSlice maps a slice of domain students.
func ToStudentResponseSlice(students []domain.Student) []StudentResponse {
	out := make([]StudentResponse, len(students))
	for i := range students {
		out[i] = ToStudentResponse(&students[i])
	}
	return out
}
