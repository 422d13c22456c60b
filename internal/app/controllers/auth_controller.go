// Package controllers handles HTTP request handling
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/app/services"
	"github.com/oguzk/stajtakip/internal/middleware"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
)

// AuthController handles authentication and user administration endpoints
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Login authenticates a user
// @Summary Log in
// @Description Authenticates with email and password and returns a bearer token together with the user's profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid email or password"
// @Failure 500 {object} dto.ErrorResponse
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("E-posta ve şifre zorunludur."))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Giriş yapılırken bir sunucu hatası oluştu.")
		return
	}

	c.logger.Info().Int64("userId", resp.User.ID).Msg("User logged in")
	ctx.JSON(http.StatusOK, resp)
}

// ResetPassword overwrites a user's password
// @Summary Reset password
// @Description Sets a new password for the account registered to the given email.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /reset-password [post]
func (c *AuthController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("E-posta ve yeni şifre zorunludur."))
		return
	}

	if err := c.authService.ResetPassword(ctx.Request.Context(), req.Email, req.NewPassword); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Bu e-posta adresi ile kayıtlı kullanıcı bulunamadı."))
			return
		}
		middleware.HandleAPIError(ctx, err, "Şifre güncellenirken bir hata oluştu.")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Şifreniz başarıyla güncellendi."})
}

// ChangePassword changes a user's password after verifying the current one
// @Summary Change password
// @Description Verifies the current password, stores the new one and clears the forced password change flag.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Email, current and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse "Current password is wrong"
// @Failure 404 {object} dto.ErrorResponse "Unknown email"
// @Failure 500 {object} dto.ErrorResponse
// @Router /change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Tüm alanlar zorunludur."))
		return
	}

	err := c.authService.ChangePassword(ctx.Request.Context(), req.Email, req.CurrentPassword, req.NewPassword)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Şifre değiştirilirken bir hata oluştu.")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Şifre başarıyla değiştirildi."})
}

// CreateUser creates a new user account
// @Summary Create user
// @Description Creates a user. Without an explicit role the General Admin role is assigned.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User data"
// @Success 200 {object} models.User
// @Failure 400 {object} dto.ErrorResponse "Missing fields or duplicate email/username"
// @Failure 500 {object} dto.ErrorResponse
// @Router /kullanici [post]
func (c *AuthController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email, username ve password zorunludur."))
		return
	}

	user, err := c.authService.CreateUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Kullanıcı oluşturulurken bir hata oluştu.")
		return
	}

	c.logger.Info().Int64("userId", user.ID).Str("role", user.Role.Name).Msg("User created")
	ctx.JSON(http.StatusOK, user)
}

// ListUsers lists all users
// @Summary List users
// @Description Returns every user with role and department names.
// @Tags users
// @Produce json
// @Success 200 {array} dto.UserListItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /kullanicilar [get]
func (c *AuthController) ListUsers(ctx *gin.Context) {
	users, err := c.authService.ListUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Kullanıcılar getirilirken bir hata oluştu.")
		return
	}
	ctx.JSON(http.StatusOK, users)
}
