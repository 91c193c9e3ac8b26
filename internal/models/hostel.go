package models

import "time"

// HostelAllocation is the persistence model for the hostel_allocations table.
type HostelAllocation struct {
	ID           int64
	AllocationID string
	StudentRefID int64
	StudentName  string
	Block        string
	RoomNo       string
	BedNo        string
	MoveIn       string
	MoveOut      *string
	Status       string
	RequestedAt  time.Time
	AllocatedBy  string
	Notes        string
}
