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

// ApplicationController handles internship applications and their review.
type ApplicationController struct {
	applications repositories.ApplicationRepository
	students     repositories.StudentRepository
	internships  repositories.InternshipRepository
	logger       zerolog.Logger
}

// NewApplicationController creates an application controller.
func NewApplicationController(
	applications repositories.ApplicationRepository,
	students repositories.StudentRepository,
	internships repositories.InternshipRepository,
	logger zerolog.Logger,
) *ApplicationController {
	return &ApplicationController{
		applications: applications,
		students:     students,
		internships:  internships,
		logger:       logger,
	}
}

type createApplicationRequest struct {
	Internship  string `json:"internship" binding:"required"`
	CoverLetter string `json:"coverLetter"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type evaluateRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// ListApplications returns applications. Students only see their own.
func (ac *ApplicationController) ListApplications(ctx *gin.Context) {
	user := auth.CurrentUser(ctx)
	requestCtx := ctx.Request.Context()

	var studentFilter *primitive.ObjectID
	if user.Role == models.RoleStudent {
		student, err := ac.students.GetStudentByUser(requestCtx, user.ID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				ctx.JSON(http.StatusNotFound, gin.H{"message": "Student profile not found"})
				return
			}
			ac.serverError(ctx, err)
			return
		}
		studentFilter = &student.ID
	}

	applications, err := ac.applications.ListApplications(requestCtx, studentFilter)
	if err != nil {
		ac.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, applications)
}

// GetApplication returns a single application by id.
func (ac *ApplicationController) GetApplication(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application id"})
		return
	}

	application, err := ac.applications.GetApplicationByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		ac.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, application)
}

// CreateApplication lets a student apply to a posting once.
func (ac *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req createApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Internship id is required"})
		return
	}

	internshipID, err := primitive.ObjectIDFromHex(req.Internship)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid internship id"})
		return
	}

	user := auth.CurrentUser(ctx)
	requestCtx := ctx.Request.Context()

	student, err := ac.students.GetStudentByUser(requestCtx, user.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Student profile not found"})
			return
		}
		ac.serverError(ctx, err)
		return
	}

	if _, err := ac.internships.GetInternshipByID(requestCtx, internshipID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Internship not found"})
			return
		}
		ac.serverError(ctx, err)
		return
	}

	_, err = ac.applications.GetApplicationByInternshipAndStudent(requestCtx, internshipID, student.ID)
	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "You have already applied to this internship"})
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		ac.serverError(ctx, err)
		return
	}

	application := &models.Application{
		InternshipID: internshipID,
		StudentID:    student.ID,
		CoverLetter:  req.CoverLetter,
	}

	if _, err := ac.applications.CreateApplication(requestCtx, application); err != nil {
		ac.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, application)
}

// UpdateStatus sets the application status. Any known status value is
// accepted in any order; there is no transition checking.
func (ac *ApplicationController) UpdateStatus(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application id"})
		return
	}

	var req updateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}
	if !models.IsValidApplicationStatus(req.Status) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status value"})
		return
	}

	requestCtx := ctx.Request.Context()
	if err := ac.applications.UpdateApplicationStatus(requestCtx, id, req.Status); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		ac.serverError(ctx, err)
		return
	}

	application, err := ac.applications.GetApplicationByID(requestCtx, id)
	if err != nil {
		ac.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, application)
}

// Evaluate attaches an admin review to the application, stamping the
// evaluator and time.
func (ac *ApplicationController) Evaluate(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application id"})
		return
	}

	var req evaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 0 and 5"})
		return
	}

	user := auth.CurrentUser(ctx)
	now := time.Now()
	evaluation := models.Evaluation{
		Rating:      req.Rating,
		Feedback:    req.Feedback,
		EvaluatedBy: &user.ID,
		EvaluatedAt: &now,
	}

	requestCtx := ctx.Request.Context()
	if err := ac.applications.SetApplicationEvaluation(requestCtx, id, evaluation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		ac.serverError(ctx, err)
		return
	}

	application, err := ac.applications.GetApplicationByID(requestCtx, id)
	if err != nil {
		ac.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, application)
}

// DeleteApplication removes an application. Students may only remove their
// own applications while still pending.
func (ac *ApplicationController) DeleteApplication(ctx *gin.Context) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application id"})
		return
	}

	requestCtx := ctx.Request.Context()
	application, err := ac.applications.GetApplicationByID(requestCtx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
			return
		}
		ac.serverError(ctx, err)
		return
	}

	user := auth.CurrentUser(ctx)
	if user.Role == models.RoleStudent {
		student, err := ac.students.GetStudentByUser(requestCtx, user.ID)
		if err != nil || application.StudentID != student.ID {
			ctx.JSON(http.StatusForbidden, gin.H{"message": "Not authorized"})
			return
		}
		if application.Status != models.ApplicationPending {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Cannot delete non-pending application"})
			return
		}
	}

	if err := ac.applications.DeleteApplication(requestCtx, id); err != nil {
		ac.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

func (ac *ApplicationController) serverError(ctx *gin.Context, err error) {
	ac.logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
