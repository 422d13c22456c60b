package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP status codes and the Turkish
// messages the clients display. serverMessage is the endpoint's own wording
// for unexpected failures; the underlying error is only logged.
func HandleAPIError(c *gin.Context, err error, serverMessage string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewErrorResponse("Geçersiz e-posta veya şifre."))
	case errors.Is(err, apperrors.ErrWrongPassword):
		c.JSON(401, dto.NewErrorResponse("Mevcut şifre yanlış."))
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewErrorResponse("Kullanıcı bulunamadı."))
	case errors.Is(err, apperrors.ErrRoleNotFound):
		c.JSON(404, dto.NewErrorResponse("Geçerli bir rol bulunamadı."))
	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		c.JSON(404, dto.NewErrorResponse("Bölüm bulunamadı."))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse("Öğrenci bulunamadı."))
	case errors.Is(err, apperrors.ErrTermNotFound):
		c.JSON(404, dto.NewErrorResponse("Staj dönemi bulunamadı."))
	case errors.Is(err, apperrors.ErrInternshipNotFound):
		c.JSON(404, dto.NewErrorResponse("Staj kaydı bulunamadı."))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse("Kayıt bulunamadı."))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(400, dto.NewErrorResponse("Bu e-posta adresi veya kullanıcı adı zaten kullanılıyor."))
	case errors.Is(err, apperrors.ErrTermAlreadyExists):
		c.JSON(400, dto.NewErrorResponse("Bu isimde bir staj dönemi zaten var."))
	case errors.Is(err, apperrors.ErrInternshipAlreadyExists):
		c.JSON(409, dto.NewErrorResponse("Bu öğrencinin bu sıradaki stajı zaten kayıtlı."))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse("Bu işlem için yetkiniz yok."))
	case errors.Is(err, apperrors.ErrTokenExpired), errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewErrorResponse("Geçersiz oturum."))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		message := "Geçersiz istek."
		var customErr *apperrors.CustomError
		if errors.As(err, &customErr) && customErr.Message != "" {
			message = customErr.Message
		}
		c.JSON(400, dto.NewErrorResponse(message))
	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse(serverMessage))
	}
}
