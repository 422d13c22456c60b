package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oguzk/stajtakip/internal/legacy/auth"
	"github.com/oguzk/stajtakip/internal/legacy/controllers"
	"github.com/oguzk/stajtakip/internal/legacy/models"
	"github.com/oguzk/stajtakip/internal/middleware"
)

// SetupRouter mounts the legacy API routes. The whole /api surface sits
// behind the general limiter; /api/auth additionally gets the strict one.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	internshipController *controllers.InternshipController,
	applicationController *controllers.ApplicationController,
	authMiddleware *auth.Middleware,
	generalLimiter *middleware.RateLimiter,
	authLimiter *middleware.RateLimiter,
) {
	api := router.Group("/api")
	api.Use(generalLimiter.Middleware())

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK", "message": "ITS API is running"})
	})

	authGroup := api.Group("/auth")
	authGroup.Use(authLimiter.Middleware())
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authController.Me)
	}

	internships := api.Group("/internships")
	internships.Use(authMiddleware.RequireAuth())
	{
		internships.GET("", internshipController.ListInternships)
		internships.GET("/:id", internshipController.GetInternship)

		companyOnly := authMiddleware.RequireRoles(models.RoleCompany, models.RoleAdmin)
		internships.POST("", companyOnly, internshipController.CreateInternship)
		internships.PUT("/:id", companyOnly, internshipController.UpdateInternship)
		internships.DELETE("/:id", companyOnly, internshipController.DeleteInternship)
	}

	applications := api.Group("/applications")
	applications.Use(authMiddleware.RequireAuth())
	{
		applications.GET("", applicationController.ListApplications)
		applications.GET("/:id", applicationController.GetApplication)
		applications.POST("", authMiddleware.RequireRoles(models.RoleStudent), applicationController.CreateApplication)
		applications.PUT("/:id/status", authMiddleware.RequireRoles(models.RoleCompany, models.RoleAdmin), applicationController.UpdateStatus)
		applications.PUT("/:id/evaluate", authMiddleware.RequireRoles(models.RoleAdmin), applicationController.Evaluate)
		applications.DELETE("/:id", applicationController.DeleteApplication)
	}
}
