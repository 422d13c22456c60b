package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/app/services"
	"github.com/oguzk/stajtakip/internal/middleware"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// InternshipController handles student listing, grading, report generation
// and document parsing endpoints
type InternshipController struct {
	internshipService *services.InternshipService
	reportService     *services.ReportService
	documentService   *services.DocumentService
	logger            zerolog.Logger
}

// NewInternshipController creates a new InternshipController
func NewInternshipController(internshipService *services.InternshipService, reportService *services.ReportService, documentService *services.DocumentService, logger zerolog.Logger) *InternshipController {
	return &InternshipController{
		internshipService: internshipService,
		reportService:     reportService,
		documentService:   documentService,
		logger:            logger,
	}
}

// ListStudents lists a department's students with their internships in a term
// @Summary List students
// @Description Returns students holding an internship in the term. gradeFilter: all, S, U or ungraded. studentTypeFilter: all, first or second.
// @Tags internships
// @Produce json
// @Param departmentId path int true "Department ID"
// @Param termId path int true "Term ID"
// @Param gradeFilter query string false "Grade filter" default(all)
// @Param studentTypeFilter query string false "Student type filter" default(all)
// @Success 200 {array} dto.StudentSummary
// @Failure 404 {object} dto.ErrorResponse "Unknown department or term"
// @Failure 500 {object} dto.ErrorResponse
// @Router /students/{departmentId}/{termId} [get]
func (c *InternshipController) ListStudents(ctx *gin.Context) {
	departmentID, err := strconv.ParseInt(ctx.Param("departmentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Geçersiz bölüm ID."))
		return
	}
	termID, err := strconv.ParseInt(ctx.Param("termId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Geçersiz dönem ID."))
		return
	}

	gradeFilter := ctx.DefaultQuery("gradeFilter", services.GradeFilterAll)
	studentTypeFilter := ctx.DefaultQuery("studentTypeFilter", services.StudentTypeAll)

	students, err := c.internshipService.ListStudents(ctx.Request.Context(), departmentID, termID, gradeFilter, studentTypeFilter)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Öğrenciler getirilirken bir hata oluştu.")
		return
	}
	ctx.JSON(http.StatusOK, students)
}

// BulkGrade applies a batch of internship evaluations
// @Summary Grade internships in bulk
// @Description Applies each grade entry independently and reports per-entry success. One failing entry does not abort the batch.
// @Tags internships
// @Accept json
// @Produce json
// @Param request body dto.BulkGradeRequest true "Grade entries"
// @Security BearerAuth
// @Success 200 {object} dto.BulkGradeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /grade-internships-bulk [post]
func (c *InternshipController) BulkGrade(ctx *gin.Context) {
	var req dto.BulkGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Not listesi zorunludur."))
		return
	}

	resp, err := c.internshipService.BulkGrade(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Notlar kaydedilirken bir hata oluştu.")
		return
	}

	c.logger.Info().
		Int("success", resp.SuccessCount).
		Int("failure", resp.FailureCount).
		Msg("Bulk grading finished")
	ctx.JSON(http.StatusOK, resp)
}

// CreateInternship registers an internship record
// @Summary Create internship
// @Description Registers an internship, creating or refreshing the student and company records.
// @Tags internships
// @Accept json
// @Produce json
// @Param request body dto.CreateInternshipRequest true "Internship data"
// @Success 200 {object} models.Internship
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Record for this order already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /internship [post]
func (c *InternshipController) CreateInternship(ctx *gin.Context) {
	var req dto.CreateInternshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Tüm zorunlu alanlar doldurulmalıdır."))
		return
	}

	internship, err := c.internshipService.CreateInternship(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Staj kaydı oluşturulurken bir hata oluştu.")
		return
	}

	c.logger.Info().
		Str("studentId", internship.StudentID).
		Str("order", string(internship.InternshipOrder)).
		Msg("Internship created")
	ctx.JSON(http.StatusOK, internship)
}

// GenerateReport produces the evaluation report as a DOCX download
// @Summary Generate evaluation report
// @Description Builds a DOCX report for a department and term. Errors are returned as JSON even though the success response is binary.
// @Tags internships
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param request body dto.GenerateReportRequest true "Report parameters"
// @Security BearerAuth
// @Success 200 {file} file
// @Failure 404 {object} dto.ErrorResponse "Unknown department or term"
// @Failure 500 {object} dto.ErrorResponse
// @Router /internship/generate-report [post]
func (c *InternshipController) GenerateReport(ctx *gin.Context) {
	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dönem ve bölüm zorunludur."))
		return
	}

	data, filename, err := c.reportService.GenerateReport(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Rapor oluşturulurken bir hata oluştu.")
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	ctx.Data(http.StatusOK, docxContentType, data)
}

// ParsePDF extracts internship form fields from an uploaded document
// @Summary Parse internship form
// @Description Stores the uploaded form and returns the extracted student and internship fields for confirmation.
// @Tags internships
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Internship form (PDF)"
// @Success 200 {object} dto.ParsePDFResponse
// @Failure 400 {object} dto.ErrorResponse "Missing file or unreadable document"
// @Failure 500 {object} dto.ErrorResponse
// @Router /internship/parse-pdf [post]
func (c *InternshipController) ParsePDF(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Dosya yüklenmedi."))
		return
	}

	resp, err := c.documentService.ParseInternshipForm(ctx.Request.Context(), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Belge işlenirken bir hata oluştu.")
		return
	}

	c.logger.Info().
		Str("studentNumber", resp.StudentInfo.StudentNumber).
		Msg("Internship form parsed")
	ctx.JSON(http.StatusOK, resp)
}
