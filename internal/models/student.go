package models

import "time"

// Student is the persistence model for the students table.
type Student struct {
	ID              int64
	StudentID       string // human-readable unique id, e.g. COLG24S12345
	Name            string
	DOB             string
	Gender          string
	Email           string
	Mobile          string
	Program         string
	Year            string
	Department      string
	Address         string
	GuardianName    string
	GuardianContact string
	PhotoPath       string
	CreatedAt       time.Time
}
