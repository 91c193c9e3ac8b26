package pgsql

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portsrepo "github.com/campuscore/college_erp_app/internal/core/ports/repositories"
	"github.com/campuscore/college_erp_app/internal/models"
	"github.com/campuscore/college_erp_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHostelRepository struct {
	BaseRepository
}

func newPgxHostelRepository(pool *pgxpool.Pool) portsrepo.HostelRepositoryFacade {
	return &PgxHostelRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HostelRepositoryFacade = (*PgxHostelRepository)(nil)

// SaveAllocation inserts a hostel allocation row.
func (r *PgxHostelRepository) SaveAllocation(ctx context.Context, alloc domain.HostelAllocation) (*domain.HostelAllocation, error) {
	m := mapping.ToModelHostelAllocation(alloc)
	query := `
		INSERT INTO hostel_allocations (allocation_id, student_id_fk, block, room_no, bed_no,
		                                move_in, move_out, status, requested_at, allocated_by, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.AllocationID,
		m.StudentRefID,
		m.Block,
		m.RoomNo,
		m.BedNo,
		m.MoveIn,
		m.MoveOut,
		m.Status,
		m.RequestedAt,
		m.AllocatedBy,
		m.Notes,
	).Scan(&m.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to insert hostel allocation "+m.AllocationID, err)
	}

	d := mapping.ToDomainHostelAllocation(m)
	d.StudentName = alloc.StudentName
	return &d, nil
}

// ListAllocations returns all allocations joined with the student name,
// newest request first.
func (r *PgxHostelRepository) ListAllocations(ctx context.Context) ([]domain.HostelAllocation, error) {
	query := `
		SELECT h.id, h.allocation_id, h.student_id_fk, s.name, h.block, h.room_no, h.bed_no,
		       h.move_in, h.move_out, h.status, h.requested_at, h.allocated_by, h.notes
		FROM hostel_allocations h JOIN students s ON s.id = h.student_id_fk
		ORDER BY h.requested_at DESC, h.id DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query hostel allocations", err)
	}
	defer rows.Close()

	allocations := []models.HostelAllocation{}
	for rows.Next() {
		var m models.HostelAllocation
		err := rows.Scan(
			&m.ID,
			&m.AllocationID,
			&m.StudentRefID,
			&m.StudentName,
			&m.Block,
			&m.RoomNo,
			&m.BedNo,
			&m.MoveIn,
			&m.MoveOut,
			&m.Status,
			&m.RequestedAt,
			&m.AllocatedBy,
			&m.Notes,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan hostel allocation row", err)
		}
		allocations = append(allocations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating hostel allocation rows", err)
	}
	return mapping.ToDomainHostelAllocationSlice(allocations), nil
}
