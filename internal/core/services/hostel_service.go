package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portsrepo "github.com/campuscore/college_erp_app/internal/core/ports/repositories"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"
	"github.com/campuscore/college_erp_app/internal/utils"
)

type hostelService struct {
	hostelRepo  portsrepo.HostelRepositoryFacade
	studentRepo portsrepo.StudentReader
}

// NewHostelService creates a hostel service over the given repositories.
func NewHostelService(hostelRepo portsrepo.HostelRepositoryFacade, studentRepo portsrepo.StudentReader) portssvc.HostelSvcFacade {
	return &hostelService{hostelRepo: hostelRepo, studentRepo: studentRepo}
}

var _ portssvc.HostelSvcFacade = (*hostelService)(nil)

// AllocateHostel assigns a block/room/bed to a resolved student.
func (s *hostelService) AllocateHostel(ctx context.Context, req dto.AllocateHostelRequest, allocatedBy string) (*domain.HostelAllocation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	student, err := s.studentRepo.FindStudentByRef(ctx, req.StudentRef)
	if err != nil {
		return nil, err
	}

	moveIn := req.MoveIn
	if moveIn == "" {
		moveIn = time.Now().UTC().Format("2006-01-02")
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		alloc := domain.HostelAllocation{
			AllocationID: utils.GenGenericID("HST"),
			StudentRefID: student.ID,
			StudentName:  student.Name,
			Block:        req.Block,
			RoomNo:       req.RoomNo,
			BedNo:        req.BedNo,
			MoveIn:       moveIn,
			Status:       domain.HostelAllocated,
			RequestedAt:  time.Now().UTC(),
			AllocatedBy:  allocatedBy,
			Notes:        req.Notes,
		}

		created, err := s.hostelRepo.SaveAllocation(ctx, alloc)
		if err == nil {
			logger.Info("Hostel allocated",
				slog.String("allocation_id", created.AllocationID),
				slog.String("student_id", student.StudentID),
				slog.String("room", req.Block+"-"+req.RoomNo+"-"+req.BedNo))
			return created, nil
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Allocation ID collision, regenerating", slog.Int("attempt", attempt+1))
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("%w: could not assign a unique allocation ID after %d attempts", apperrors.ErrDuplicate, maxIDAttempts)
}

// ListAllocations returns current occupancy.
func (s *hostelService) ListAllocations(ctx context.Context) ([]domain.HostelAllocation, error) {
	return s.hostelRepo.ListAllocations(ctx)
}
