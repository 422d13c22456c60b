package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oguzk/stajtakip/internal/legacy/auth"
	"github.com/oguzk/stajtakip/internal/legacy/models"
	"github.com/oguzk/stajtakip/internal/legacy/repositories"
)

// InternshipController handles internship posting CRUD.
type InternshipController struct {
	internships repositories.InternshipRepository
	companies   repositories.CompanyRepository
	logger      zerolog.Logger
}

// NewInternshipController creates an internship controller.
func NewInternshipController(
	internships repositories.InternshipRepository,
	companies repositories.CompanyRepository,
	logger zerolog.Logger,
) *InternshipController {
	return &InternshipController{
		internships: internships,
		companies:   companies,
		logger:      logger,
	}
}

// internshipPayload carries create/update fields. Nil pointers on update
// mean "leave unchanged", mirroring the original partial-merge behavior.
type internshipPayload struct {
	Company      *string    `json:"company"`
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Requirements []string   `json:"requirements"`
	Duration     *string    `json:"duration"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Location     *string    `json:"location"`
	Stipend      *float64   `json:"stipend"`
	Positions    *int       `json:"positions"`
	Status       *string    `json:"status"`
}

func (p *internshipPayload) apply(internship *models.Internship) {
	if p.Title != nil {
		internship.Title = *p.Title
	}
	if p.Description != nil {
		internship.Description = *p.Description
	}
	if p.Requirements != nil {
		internship.Requirements = p.Requirements
	}
	if p.Duration != nil {
		internship.Duration = *p.Duration
	}
	if p.StartDate != nil {
		internship.StartDate = p.StartDate
	}
	if p.EndDate != nil {
		internship.EndDate = p.EndDate
	}
	if p.Location != nil {
		internship.Location = *p.Location
	}
	if p.Stipend != nil {
		internship.Stipend = *p.Stipend
	}
	if p.Positions != nil {
		internship.Positions = *p.Positions
	}
	if p.Status != nil {
		internship.Status = *p.Status
	}
}

// ListInternships returns postings, optionally filtered by status and a
// case-insensitive title/description search.
func (ic *InternshipController) ListInternships(ctx *gin.Context) {
	filter := repositories.InternshipFilter{
		Status: ctx.Query("status"),
		Search: ctx.Query("search"),
	}

	internships, err := ic.internships.ListInternships(ctx.Request.Context(), filter)
	if err != nil {
		ic.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, internships)
}

// GetInternship returns a single posting by id.
func (ic *InternshipController) GetInternship(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid internship id"})
		return
	}

	internship, err := ic.internships.GetInternshipByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Internship not found"})
			return
		}
		ic.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, internship)
}

// CreateInternship creates a posting for the caller's company. Admins may
// create on behalf of any company by passing the company id.
func (ic *InternshipController) CreateInternship(ctx *gin.Context) {
	var payload internshipPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if payload.Title == nil || payload.Description == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required"})
		return
	}

	user := auth.CurrentUser(ctx)
	requestCtx := ctx.Request.Context()

	companyID, ok := ic.resolveCompany(ctx, user, payload.Company)
	if !ok {
		return
	}

	internship := &models.Internship{CompanyID: companyID}
	payload.apply(internship)

	if _, err := ic.internships.CreateInternship(requestCtx, internship); err != nil {
		ic.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, internship)
}

// UpdateInternship merges the payload into an existing posting. Companies
// may only touch their own postings; admins bypass the ownership check.
func (ic *InternshipController) UpdateInternship(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid internship id"})
		return
	}

	var payload internshipPayload
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	requestCtx := ctx.Request.Context()
	internship, err := ic.internships.GetInternshipByID(requestCtx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Internship not found"})
			return
		}
		ic.serverError(ctx, err)
		return
	}

	if !ic.authorizeOwner(ctx, internship) {
		return
	}

	payload.apply(internship)

	if err := ic.internships.UpdateInternship(requestCtx, internship); err != nil {
		ic.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, internship)
}

// DeleteInternship removes a posting, with the same ownership rule as update.
func (ic *InternshipController) DeleteInternship(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid internship id"})
		return
	}

	requestCtx := ctx.Request.Context()
	internship, err := ic.internships.GetInternshipByID(requestCtx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Internship not found"})
			return
		}
		ic.serverError(ctx, err)
		return
	}

	if !ic.authorizeOwner(ctx, internship) {
		return
	}

	if err := ic.internships.DeleteInternship(requestCtx, id); err != nil {
		ic.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Internship deleted"})
}

// resolveCompany determines the company a new posting belongs to. Writes the
// error response itself when resolution fails.
func (ic *InternshipController) resolveCompany(ctx *gin.Context, user *models.User, explicit *string) (primitive.ObjectID, bool) {
	company, err := ic.companies.GetCompanyByUser(ctx.Request.Context(), user.ID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		ic.serverError(ctx, err)
		return primitive.NilObjectID, false
	}
	if company != nil {
		return company.ID, true
	}

	if user.Role == models.RoleAdmin && explicit != nil {
		id, err := primitive.ObjectIDFromHex(*explicit)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid company id"})
			return primitive.NilObjectID, false
		}
		return id, true
	}

	ctx.JSON(http.StatusNotFound, gin.H{"message": "Company profile not found"})
	return primitive.NilObjectID, false
}

// authorizeOwner checks that the caller's company owns the posting. Admins
// pass unconditionally. Writes the error response itself on failure.
func (ic *InternshipController) authorizeOwner(ctx *gin.Context, internship *models.Internship) bool {
	user := auth.CurrentUser(ctx)
	if user.Role == models.RoleAdmin {
		return true
	}

	company, err := ic.companies.GetCompanyByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
			return false
		}
		ic.serverError(ctx, err)
		return false
	}

	if internship.CompanyID != company.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
		return false
	}
	return true
}

func (ic *InternshipController) serverError(ctx *gin.Context, err error) {
	ic.logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
