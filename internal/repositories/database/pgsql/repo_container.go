package pgsql

import (
	portsrepo "github.com/campuscore/college_erp_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx repositories over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StudentRepo: newPgxStudentRepository(dbPool),
		FeeRepo:     newPgxFeeRepository(dbPool),
		HostelRepo:  newPgxHostelRepository(dbPool),
		ExamRepo:    newPgxExamRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
