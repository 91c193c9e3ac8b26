package services

import (
	"context"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/dto"
)

// UserSvcFacade exposes staff account and authentication operations.
type UserSvcFacade interface {
	// CreateUser provisions a staff account with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// Authenticate verifies credentials and returns the user, or
	// apperrors.ErrUnauthorized.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// EnsureDefaultAdmin provisions the first-run "admin" account with the
	// configured placeholder password if no such user exists.
	EnsureDefaultAdmin(ctx context.Context, placeholderPassword string) error
}
