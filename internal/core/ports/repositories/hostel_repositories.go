package repositories

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
)

// HostelReader defines read operations for hostel allocations.
type HostelReader interface {
	// ListAllocations returns all allocations, newest request first.
	ListAllocations(ctx context.Context) ([]domain.HostelAllocation, error)
}

// HostelWriter defines write operations for hostel allocations.
type HostelWriter interface {
	// SaveAllocation inserts a hostel allocation row. A duplicate allocation
	// ID surfaces as apperrors.ErrDuplicate.
	SaveAllocation(ctx context.Context, alloc domain.HostelAllocation) (*domain.HostelAllocation, error)
}

// HostelRepositoryFacade combines all hostel repository interfaces.
type HostelRepositoryFacade interface {
	HostelReader
	HostelWriter
}
