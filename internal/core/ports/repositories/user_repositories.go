package repositories

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
)

// UserReader defines read operations for staff accounts.
type UserReader interface {
	// FindUserByUsername retrieves a user by unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriter defines write operations for staff accounts.
type UserWriter interface {
	// SaveUser inserts a user. A duplicate username surfaces as
	// apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
