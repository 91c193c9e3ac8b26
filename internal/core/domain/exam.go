package domain

import "time"

// ExamStatus is derived from marks at the pass threshold.
type ExamStatus string

const (
	ExamPass ExamStatus = "Pass"
	ExamFail ExamStatus = "Fail"
)

// PassThreshold is the minimum marks for a Pass grade.
const PassThreshold = 40.0

// Exam is one graded subject entry for a student.
type Exam struct {
	ID           int64      `json:"-"`
	ExamID       string     `json:"examID"`
	StudentRefID int64      `json:"-"`
	StudentName  string     `json:"studentName"`
	SubjectCode  string     `json:"subjectCode"`
	SubjectName  string     `json:"subjectName"`
	Marks        float64    `json:"marks"`
	Status       ExamStatus `json:"status"`
	GradedAt     time.Time  `json:"gradedAt"`
	GradedBy     string     `json:"gradedBy"`
	Notes        string     `json:"notes"`
}

// StatusForMarks derives Pass/Fail from the marks value.
func StatusForMarks(marks float64) ExamStatus {
	if marks >= PassThreshold {
		return ExamPass
	}
	return ExamFail
}
