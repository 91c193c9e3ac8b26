package domain

import "time"

// Student is the identity record every other table hangs off.
// StudentID is the human-readable identifier (e.g. COLG24S12345); ID is the
// store-owned numeric key.
type Student struct {
	ID              int64     `json:"-"`
	StudentID       string    `json:"studentID"`
	Name            string    `json:"name"`
	DOB             string    `json:"dob"`
	Gender          string    `json:"gender"`
	Email           string    `json:"email"`
	Mobile          string    `json:"mobile"`
	Program         string    `json:"program"`
	Year            string    `json:"year"`
	Department      string    `json:"department"`
	Address         string    `json:"address"`
	GuardianName    string    `json:"guardianName"`
	GuardianContact string    `json:"guardianContact"`
	PhotoPath       string    `json:"photoPath"`
	CreatedAt       time.Time `json:"createdAt"`
}
