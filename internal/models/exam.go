package models

import "time"

// Exam is the persistence model for the exams table.
type Exam struct {
	ID           int64
	ExamID       string
	StudentRefID int64
	StudentName  string
	SubjectCode  string
	SubjectName  string
	Marks        float64
	Status       string
	GradedAt     time.Time
	GradedBy     string
	Notes        string
}
