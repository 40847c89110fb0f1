package services

import (
	"context"

	"presensia/internal/app/models"
	"presensia/internal/app/models/dto"
	"presensia/internal/pkg/apperrors"
	"presensia/internal/pkg/auth"
	"presensia/internal/pkg/logger"
)

// UserStore is the persistence seam for users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	GenerateToken(user *models.User) (token string, expiresIn int, err error)
}

// AuthService authenticates users and manages accounts.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
}

type authService struct {
	userStore  UserStore
	jwtService TokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(userStore UserStore, jwtService TokenIssuer) AuthService {
	return &authService{
		userStore:  userStore,
		jwtService: jwtService,
	}
}

// Login verifies credentials and issues an access token. Lookup failures
// and password mismatches are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userStore.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("username", user.Username).Int64("userId", user.ID).Msg("User logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(expiresIn),
		User:      dto.NewUserResponse(user),
	}, nil
}

// CreateUser registers a new account with a hashed password. Admin only;
// the role check happens at the routing layer.
func (s *authService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		FullName: req.FullName,
		RoleType: models.RoleType(req.RoleType),
		IsActive: true,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("username", user.Username).Str("roleType", req.RoleType).Msg("User created")
	return user, nil
}
