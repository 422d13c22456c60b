package dto

import "github.com/oguzk/stajtakip/internal/app/models"

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the token and the authenticated user's profile
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *UserProfile `json:"user"`
}

// UserProfile is the user payload returned on login
type UserProfile struct {
	ID                     int64              `json:"id"`
	Name                   *string            `json:"name"`
	Email                  string             `json:"email"`
	Username               string             `json:"username"`
	Role                   *models.Role       `json:"role"`
	Department             *models.Department `json:"department"`
	RequiresPasswordChange bool               `json:"requiresPasswordChange"`
}

// ResetPasswordRequest is the body of POST /api/reset-password
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ChangePasswordRequest is the body of POST /api/change-password
type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// CreateUserRequest is the body of POST /api/kullanici.
// RoleID is optional; the General Admin role is used when absent.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   int64  `json:"roleId"`
}

// UserListItem is one row of GET /api/kullanicilar
type UserListItem struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	Username   string    `json:"username"`
	Role       *NameOnly `json:"role"`
	Department *NameOnly `json:"department"`
}

// NameOnly is a related entity reduced to its name
type NameOnly struct {
	Name string `json:"name"`
}
