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

// defaultAdminUsername is the bootstrap account provisioned on first run.
const defaultAdminUsername = "admin"

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a user service over the given repository.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// CreateUser provisions a staff account with a bcrypt-hashed password.
func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}

	created, err := s.userRepo.SaveUser(ctx, domain.User{
		Username:       req.Username,
		HashedPassword: hash,
		Role:           role,
		DisplayName:    displayName,
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User created",
		slog.String("username", created.Username),
		slog.String("role", string(created.Role)))
	return created, nil
}

// Authenticate verifies credentials and returns the user. Both an unknown
// username and a wrong password collapse into apperrors.ErrUnauthorized so
// callers cannot probe which accounts exist.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// EnsureDefaultAdmin provisions the first-run "admin" account with the
// configured placeholder password if no such user exists.
func (s *userService) EnsureDefaultAdmin(ctx context.Context, placeholderPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	_, err := s.userRepo.FindUserByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(placeholderPassword)
	if err != nil {
		return fmt.Errorf("hashing default admin password: %w", err)
	}

	_, err = s.userRepo.SaveUser(ctx, domain.User{
		Username:       defaultAdminUsername,
		HashedPassword: hash,
		Role:           domain.RoleAdmin,
		DisplayName:    "Administrator",
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		// Another instance may have won the race.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return err
	}

	logger.Warn("Default admin account created, change its password before production use")
	return nil
}
