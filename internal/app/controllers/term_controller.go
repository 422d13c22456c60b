package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/app/services"
	"github.com/oguzk/stajtakip/internal/middleware"
)

// TermController handles internship term endpoints
type TermController struct {
	termService *services.TermService
	logger      zerolog.Logger
}

// NewTermController creates a new TermController
func NewTermController(termService *services.TermService, logger zerolog.Logger) *TermController {
	return &TermController{
		termService: termService,
		logger:      logger,
	}
}

// ListTerms lists all internship terms
// @Summary List terms
// @Tags terms
// @Produce json
// @Success 200 {array} models.Term
// @Failure 500 {object} dto.ErrorResponse
// @Router /terms [get]
func (c *TermController) ListTerms(ctx *gin.Context) {
	terms, err := c.termService.ListTerms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Staj dönemleri getirilirken bir hata oluştu.")
		return
	}
	ctx.JSON(http.StatusOK, terms)
}

// CreateTerm creates a new internship term
// @Summary Create term
// @Tags terms
// @Accept json
// @Produce json
// @Param request body dto.CreateTermRequest true "Term data"
// @Success 200 {object} models.Term
// @Failure 400 {object} dto.ErrorResponse "Invalid dates or duplicate name"
// @Failure 500 {object} dto.ErrorResponse
// @Router /terms [post]
func (c *TermController) CreateTerm(ctx *gin.Context) {
	var req dto.CreateTermRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Tüm alanlar zorunludur."))
		return
	}

	term, err := c.termService.CreateTerm(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Staj dönemi oluşturulurken bir hata oluştu.")
		return
	}

	c.logger.Info().Str("term", term.Name).Msg("Term created")
	ctx.JSON(http.StatusOK, term)
}
