package services

import (
	"context"
	"errors"
	"strings"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/auth"
	"github.com/oguzk/stajtakip/internal/pkg/logger"
)

// authUserStore is the slice of the user repository the auth service needs.
type authUserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
	UpdatePasswordByID(ctx context.Context, userID int64, passwordHash string) error
}

type authRoleStore interface {
	GetRoleByID(ctx context.Context, id int64) (*models.Role, error)
	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
}

// tokenGenerator issues signed access tokens.
type tokenGenerator interface {
	GenerateToken(userID int64, email string) (string, error)
}

// AuthService handles login, password management and user administration
type AuthService struct {
	userRepo   authUserStore
	roleRepo   authRoleStore
	jwtService tokenGenerator
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo authUserStore, roleRepo authRoleStore, jwtService tokenGenerator) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a user by email and password and issues a token.
// Unknown email and wrong password both map to ErrInvalidCredentials so the
// response never reveals which of the two failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		logger.Error().Err(err).Int64("userId", user.ID).Msg("Token generation failed")
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Giriş başarılı!",
		Token:   token,
		User: &dto.UserProfile{
			ID:                     user.ID,
			Name:                   user.Name,
			Email:                  user.Email,
			Username:               user.Username,
			Role:                   user.Role,
			Department:             user.Department,
			RequiresPasswordChange: user.RequiresPasswordChange,
		},
	}, nil
}

// ResetPassword overwrites a user's password without further verification.
// Returns ErrUserNotFound when no account carries the email.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, email, hash)
}

// ChangePassword verifies the current password before storing the new one
// and clears the forced-change flag set for temporary passwords.
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.Password, currentPassword) {
		return apperrors.ErrWrongPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePasswordByID(ctx, user.ID, hash)
}

// CreateUser registers a new user. When no role is given the General Admin
// role is assigned.
func (s *AuthService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	var role *models.Role
	var err error
	if req.RoleID > 0 {
		role, err = s.roleRepo.GetRoleByID(ctx, req.RoleID)
	} else {
		role, err = s.roleRepo.GetRoleByName(ctx, models.RoleGeneralAdmin)
	}
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    strings.TrimSpace(req.Email),
		Username: strings.TrimSpace(req.Username),
		Password: hash,
		RoleID:   role.ID,
	}
	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	user.Role = role
	user.Password = ""
	return user, nil
}

// ListUsers returns every user reduced to identity plus role and
// department names.
func (s *AuthService) ListUsers(ctx context.Context) ([]dto.UserListItem, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserListItem, 0, len(users))
	for _, u := range users {
		item := dto.UserListItem{
			ID:       u.ID,
			Email:    u.Email,
			Username: u.Username,
		}
		if u.Role != nil {
			item.Role = &dto.NameOnly{Name: u.Role.Name}
		}
		if u.Department != nil {
			item.Department = &dto.NameOnly{Name: u.Department.Name}
		}
		items = append(items, item)
	}
	return items, nil
}
