package services

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/dto"
)

// HostelSvcFacade exposes hostel allocation operations.
type HostelSvcFacade interface {
	// AllocateHostel assigns a block/room/bed to a resolved student.
	AllocateHostel(ctx context.Context, req dto.AllocateHostelRequest, allocatedBy string) (*domain.HostelAllocation, error)

	// ListAllocations returns current occupancy.
	ListAllocations(ctx context.Context) ([]domain.HostelAllocation, error)
}
