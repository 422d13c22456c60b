package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzk/stajtakip/internal/app/controllers"
	"github.com/oguzk/stajtakip/internal/middleware"
)

// SetupRouter configures all application routes. The endpoint paths are flat
// under /api, as the frontends expect.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	commissionController *controllers.CommissionController,
	termController *controllers.TermController,
	internshipController *controllers.InternshipController,
	authMiddleware *middleware.AuthMiddleware,
	generalLimiter *middleware.RateLimiter,
	authLimiter *middleware.RateLimiter,
) {
	api := router.Group("/api")
	api.Use(generalLimiter.Middleware())

	// --- Public auth routes, with the stricter limiter on top ---
	authRoutes := api.Group("")
	authRoutes.Use(authLimiter.Middleware())
	{
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/reset-password", authController.ResetPassword)
		authRoutes.POST("/change-password", authController.ChangePassword)
	}

	// --- Open application routes, called by the admin and chair frontends
	// without an Authorization header ---
	{
		// User administration
		api.POST("/kullanici", authController.CreateUser)
		api.GET("/kullanicilar", authController.ListUsers)

		// Departments and commission management
		api.GET("/departments", commissionController.ListDepartments)
		api.GET("/department-chair/:departmentId", commissionController.GetDepartmentChair)
		api.POST("/create-commission-chair", commissionController.CreateChair)
		api.DELETE("/remove-commission-chair/:userId", commissionController.RemoveChair)
		api.GET("/commission-chairs", commissionController.ListChairs)
		api.POST("/assign-commission-chair", commissionController.AssignChair)
		api.GET("/commission-status", commissionController.CommissionStatus)

		// Terms
		api.GET("/terms", termController.ListTerms)
		api.POST("/terms", termController.CreateTerm)

		// Students and internships
		api.GET("/students/:departmentId/:termId", internshipController.ListStudents)
		api.POST("/internship", internshipController.CreateInternship)
		api.POST("/internship/parse-pdf", internshipController.ParsePDF)
	}

	// --- Token-protected routes, the only ones the evaluation screens send
	// a Bearer token to ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/grade-internships-bulk", internshipController.BulkGrade)
		authenticated.POST("/internship/generate-report", internshipController.GenerateReport)
	}
}
