package mapping

import (
	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/models"
)

// ToModelHostelAllocation converts a domain HostelAllocation to its persistence model.
func ToModelHostelAllocation(d domain.HostelAllocation) models.HostelAllocation {
	return models.HostelAllocation{
		ID:           d.ID,
		AllocationID: d.AllocationID,
		StudentRefID: d.StudentRefID,
		StudentName:  d.StudentName,
		Block:        d.Block,
		RoomNo:       d.RoomNo,
		BedNo:        d.BedNo,
		MoveIn:       d.MoveIn,
		MoveOut:      d.MoveOut,
		Status:       string(d.Status),
		RequestedAt:  d.RequestedAt,
		AllocatedBy:  d.AllocatedBy,
		Notes:        d.Notes,
	}
}

// ToDomainHostelAllocation converts a persistence HostelAllocation to the domain type.
func ToDomainHostelAllocation(m models.HostelAllocation) domain.HostelAllocation {
	return domain.HostelAllocation{
		ID:           m.ID,
		AllocationID: m.AllocationID,
		StudentRefID: m.StudentRefID,
		StudentName:  m.StudentName,
		Block:        m.Block,
		RoomNo:       m.RoomNo,
		BedNo:        m.BedNo,
		MoveIn:       m.MoveIn,
		MoveOut:      m.MoveOut,
		Status:       domain.HostelStatus(m.Status),
		RequestedAt:  m.RequestedAt,
		AllocatedBy:  m.AllocatedBy,
		Notes:        m.Notes,
	}
}

// ToDomainHostelAllocationSlice converts a slice of persistence HostelAllocations.
func ToDomainHostelAllocationSlice(ms []models.HostelAllocation) []domain.HostelAllocation {
	ds := make([]domain.HostelAllocation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainHostelAllocation(m)
	}
	return ds
}
