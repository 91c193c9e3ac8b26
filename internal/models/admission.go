package models

import "time"

// Admission is the persistence model for the admissions table.
type Admission struct {
	ID           int64
	AdmissionID  string
	StudentRefID int64
	SubmittedAt  time.Time
	Source       string
	Documents    string
	Status       string
	Remarks      string
}
