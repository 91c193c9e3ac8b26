package domain

import "time"

// HostelStatus tracks the allocation lifecycle.
type HostelStatus string

const (
	HostelRequested HostelStatus = "Requested"
	HostelAllocated HostelStatus = "Allocated"
	HostelVacated   HostelStatus = "Vacated"
)

// HostelAllocation assigns a student a block/room/bed.
type HostelAllocation struct {
	ID           int64        `json:"-"`
	AllocationID string       `json:"allocationID"`
	StudentRefID int64        `json:"-"`
	StudentName  string       `json:"studentName"`
	Block        string       `json:"block"`
	RoomNo       string       `json:"roomNo"`
	BedNo        string       `json:"bedNo"`
	MoveIn       string       `json:"moveIn"`
	MoveOut      *string      `json:"moveOut"`
	Status       HostelStatus `json:"status"`
	RequestedAt  time.Time    `json:"requestedAt"`
	AllocatedBy  string       `json:"allocatedBy"`
	Notes        string       `json:"notes"`
}
