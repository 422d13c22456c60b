package dto

// ErrorResponse is the flat error body the clients expect.
// Messages are user-facing and Turkish.
type ErrorResponse struct {
	Error string `json:"error" example:"Geçersiz e-posta veya şifre."`
}

// MessageResponse is the standard success body for mutating endpoints.
type MessageResponse struct {
	Message string `json:"message" example:"Şifreniz başarıyla güncellendi."`
}

// NewErrorResponse creates an error body with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
