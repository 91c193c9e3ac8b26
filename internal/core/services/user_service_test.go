package services_test

import (
	"context"
	"testing"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/core/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User) (*domain.User, error)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	var out *domain.User
	if args.Get(0) != nil {
		out = args.Get(0).(*domain.User)
	}
	return out, args.Error(1)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username:    "warden1",
		Password:    "hunter22",
		Role:        "warden",
		DisplayName: "Hostel Warden",
	}

	suite.mockRepo.SaveUserFn = func(_ context.Context, user domain.User) (*domain.User, error) {
		user.ID = 2
		return &user, nil
	}

	created, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("warden1", created.Username)
	suite.Equal(domain.RoleWarden, created.Role)
	suite.NotEqual(req.Password, created.HashedPassword)
	suite.True(utils.CheckPasswordHash(req.Password, created.HashedPassword))
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownRole() {
	ctx := context.Background()

	created, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "x",
		Password: "password",
		Role:     "superuser",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsDisplayName() {
	ctx := context.Background()
	suite.mockRepo.SaveUserFn = func(_ context.Context, user domain.User) (*domain.User, error) {
		return &user, nil
	}

	created, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "acct1",
		Password: "password",
		Role:     "accounts",
	})

	suite.Require().NoError(err)
	suite.Equal("acct1", created.DisplayName)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	suite.mockRepo.SaveUserFn = func(_ context.Context, _ domain.User) (*domain.User, error) {
		return nil, apperrors.ErrDuplicate
	}

	created, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "admin",
		Password: "password",
		Role:     "admin",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
}

// --- Authenticate Tests ---

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{Username: "admin", HashedPassword: hash, Role: domain.RoleAdmin}

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "admin", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(stored, user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{Username: "admin", HashedPassword: hash}

	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "admin", "battery-staple")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUserIndistinguishable() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost", "whatever")

	// Unknown usernames surface the same error as wrong passwords.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(user)
}

// --- EnsureDefaultAdmin Tests ---

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_CreatesWhenMissing() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	suite.mockRepo.SaveUserFn = func(_ context.Context, user domain.User) (*domain.User, error) {
		saved = user
		return &user, nil
	}

	err := suite.service.EnsureDefaultAdmin(ctx, "changeme")

	suite.Require().NoError(err)
	suite.Equal("admin", saved.Username)
	suite.Equal(domain.RoleAdmin, saved.Role)
	suite.True(utils.CheckPasswordHash("changeme", saved.HashedPassword))
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_NoopWhenPresent() {
	ctx := context.Background()
	existing := &domain.User{Username: "admin", Role: domain.RoleAdmin}
	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(existing, nil).Once()

	err := suite.service.EnsureDefaultAdmin(ctx, "changeme")

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureDefaultAdmin_ToleratesConcurrentCreate() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByUsername", ctx, "admin").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.SaveUserFn = func(_ context.Context, _ domain.User) (*domain.User, error) {
		return nil, apperrors.ErrDuplicate
	}

	err := suite.service.EnsureDefaultAdmin(ctx, "changeme")

	suite.Require().NoError(err)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
