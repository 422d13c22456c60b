package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/app/services"
	"github.com/oguzk/stajtakip/internal/middleware"
)

// CommissionController handles department and commission management endpoints
type CommissionController struct {
	commissionService *services.CommissionService
	logger            zerolog.Logger
}

// NewCommissionController creates a new CommissionController
func NewCommissionController(commissionService *services.CommissionService, logger zerolog.Logger) *CommissionController {
	return &CommissionController{
		commissionService: commissionService,
		logger:            logger,
	}
}

// ListDepartments lists all departments
// @Summary List departments
// @Tags commission
// @Produce json
// @Success 200 {array} models.Department
// @Failure 500 {object} dto.ErrorResponse
// @Router /departments [get]
func (c *CommissionController) ListDepartments(ctx *gin.Context) {
	departments, err := c.commissionService.ListDepartments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Bölümler getirilirken bir hata oluştu.")
		return
	}
	ctx.JSON(http.StatusOK, departments)
}

// GetDepartmentChair returns the commission chair of a department
// @Summary Get department chair
// @Description Returns the chair of the department, or null when none is assigned.
// @Tags commission
// @Produce json
// @Param departmentId path int true "Department ID"
// @Success 200 {object} dto.DepartmentChair
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /department-chair/{departmentId} [get]
func (c *CommissionController) GetDepartmentChair(ctx *gin.Context) {
	departmentID, err := strconv.ParseInt(ctx.Param("departmentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Geçersiz bölüm ID."))
		return
	}

	chair, err := c.commissionService.GetDepartmentChair(ctx.Request.Context(), departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Başkan getirilirken bir hata oluştu.")
		return
	}
	ctx.JSON(http.StatusOK, chair)
}

// CreateChair creates a commission chair for a department
// @Summary Create commission chair
// @Description Creates a chair account with a temporary password. An existing chair of the department is replaced.
// @Tags commission
// @Accept json
// @Produce json
// @Param request body dto.CreateCommissionChairRequest true "Chair data"
// @Success 200 {object} dto.CreateCommissionChairResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields or duplicate email/username"
// @Failure 404 {object} dto.ErrorResponse "Chair role missing"
// @Failure 500 {object} dto.ErrorResponse
// @Router /create-commission-chair [post]
func (c *CommissionController) CreateChair(ctx *gin.Context) {
	var req dto.CreateCommissionChairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Tüm alanlar zorunludur."))
		return
	}

	user, err := c.commissionService.CreateChair(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Komisyon başkanı oluşturulurken bir hata oluştu.")
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateCommissionChairResponse{
		Message: "Komisyon başkanı başarıyla oluşturuldu.",
		User:    user,
	})
}

// RemoveChair deletes a commission chair account
// @Summary Remove commission chair
// @Tags commission
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /remove-commission-chair/{userId} [delete]
func (c *CommissionController) RemoveChair(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Geçersiz kullanıcı ID."))
		return
	}

	if err := c.commissionService.RemoveChair(ctx.Request.Context(), userID); err != nil {
		middleware.HandleAPIError(ctx, err, "Komisyon başkanı kaldırılırken bir hata oluştu.")
		return
	}

	c.logger.Info().Int64("userId", userID).Msg("Commission chair removed")
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Komisyon başkanı başarıyla kaldırıldı."})
}

// ListChairs lists all commission chairs
// @Summary List commission chairs
// @Tags commission
// @Produce json
// @Success 200 {array} dto.CommissionChairListItem
// @Failure 500 {object} dto.ErrorResponse
// @Router /commission-chairs [get]
func (c *CommissionController) ListChairs(ctx *gin.Context) {
	chairs, err := c.commissionService.ListChairs(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Komisyon başkanları getirilirken bir hata oluştu.")
		return
	}
	ctx.JSON(http.StatusOK, chairs)
}

// AssignChair moves an existing user into a department
// @Summary Assign commission chair
// @Description Moves an existing user into a department.
// @Tags commission
// @Accept json
// @Produce json
// @Param request body dto.AssignCommissionChairRequest true "User and department"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Missing IDs"
// @Failure 404 {object} dto.ErrorResponse "User or department not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /assign-commission-chair [post]
func (c *CommissionController) AssignChair(ctx *gin.Context) {
	var req dto.AssignCommissionChairRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Kullanıcı ID ve Bölüm ID gereklidir."))
		return
	}

	if err := c.commissionService.AssignChair(ctx.Request.Context(), req.UserID, req.DepartmentID); err != nil {
		middleware.HandleAPIError(ctx, err, "Komisyon başkanı atanırken bir hata oluştu.")
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Komisyon başkanı başarıyla atandı."})
}

// CommissionStatus summarizes commission membership per department
// @Summary Commission status
// @Description Lists each department with its chair and first two members. Departments without a commission are omitted.
// @Tags commission
// @Produce json
// @Success 200 {array} dto.CommissionStatusRow
// @Failure 500 {object} dto.ErrorResponse
// @Router /commission-status [get]
func (c *CommissionController) CommissionStatus(ctx *gin.Context) {
	status, err := c.commissionService.CommissionStatus(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err, "Komisyon durumu getirilirken bir hata oluştu.")
		return
	}
	ctx.JSON(http.StatusOK, status)
}
