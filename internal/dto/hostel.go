package dto

import (
	"github.com/campuscore/college_erp_app/internal/core/domain"
)

// AllocateHostelRequest is the hostel allocation form payload.
type AllocateHostelRequest struct {
	StudentRef string `json:"studentRef" binding:"required"`
	Block      string `json:"block" binding:"required"`
	RoomNo     string `json:"roomNo" binding:"required"`
	BedNo      string `json:"bedNo"`
	MoveIn     string `json:"moveIn"`
	Notes      string `json:"notes"`
}

// HostelAllocationResponse is the API representation of an allocation.
type HostelAllocationResponse struct {
	AllocationID string  `json:"allocationID"`
	StudentName  string  `json:"studentName"`
	Block        string  `json:"block"`
	RoomNo       string  `json:"roomNo"`
	BedNo        string  `json:"bedNo"`
	MoveIn       string  `json:"moveIn"`
	MoveOut      *string `json:"moveOut"`
	Status       string  `json:"status"`
	AllocatedBy  string  `json:"allocatedBy"`
}

// ToHostelAllocationResponse maps a domain allocation to its API shape.
func ToHostelAllocationResponse(h *domain.HostelAllocation) HostelAllocationResponse {
	return HostelAllocationResponse{
		AllocationID: h.AllocationID,
		StudentName:  h.StudentName,
		Block:        h.Block,
		RoomNo:       h.RoomNo,
		BedNo:        h.BedNo,
		MoveIn:       h.MoveIn,
		MoveOut:      h.MoveOut,
		Status:       string(h.Status),
		AllocatedBy:  h.AllocatedBy,
	}
}

// ToHostelAllocationResponseSlice maps a slice of domain allocations.
func ToHostelAllocationResponseSlice(hs []domain.HostelAllocation) []HostelAllocationResponse {
	out := make([]HostelAllocationResponse, len(hs))
	for i := range hs {
		out[i] = ToHostelAllocationResponse(&hs[i])
	}
	return out
}
