package domain

import "time"

// AdmissionStatus values mirror the review workflow of the admissions office.
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "Pending"
	AdmissionApproved AdmissionStatus = "Approved"
	AdmissionRejected AdmissionStatus = "Rejected"
)

// Admission records the intake event that created a Student.
type Admission struct {
	ID           int64           `json:"-"`
	AdmissionID  string          `json:"admissionID"`
	StudentRefID int64           `json:"-"`
	SubmittedAt  time.Time       `json:"submittedAt"`
	Source       string          `json:"source"`
	Documents    string          `json:"documents"`
	Status       AdmissionStatus `json:"status"`
	Remarks      string          `json:"remarks"`
}
