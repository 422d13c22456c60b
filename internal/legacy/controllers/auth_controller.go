package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oguzk/stajtakip/internal/legacy/auth"
	"github.com/oguzk/stajtakip/internal/legacy/models"
	"github.com/oguzk/stajtakip/internal/legacy/repositories"
	pkgauth "github.com/oguzk/stajtakip/internal/pkg/auth"
)

// AuthController handles registration, login and the current-user lookup.
type AuthController struct {
	users     repositories.UserRepository
	students  repositories.StudentRepository
	companies repositories.CompanyRepository
	tokens    *auth.TokenService
	logger    zerolog.Logger
}

// NewAuthController creates an auth controller.
func NewAuthController(
	users repositories.UserRepository,
	students repositories.StudentRepository,
	companies repositories.CompanyRepository,
	tokens *auth.TokenService,
	logger zerolog.Logger,
) *AuthController {
	return &AuthController{
		users:     users,
		students:  students,
		companies: companies,
		tokens:    tokens,
		logger:    logger,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Role      string `json:"role" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`

	// Student profile fields
	StudentID  string   `json:"studentId"`
	Department string   `json:"department"`
	Year       int      `json:"year"`
	GPA        float64  `json:"gpa"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`

	// Company profile fields
	CompanyName string `json:"companyName"`
	Industry    string `json:"industry"`
	Address     string `json:"address"`
	Website     string `json:"website"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user account plus its role profile and returns a token.
func (ac *AuthController) Register(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	if !models.IsValidRole(req.Role) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	requestCtx := ctx.Request.Context()

	if _, err := ac.users.GetUserByEmail(requestCtx, req.Email); err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		ac.serverError(ctx, err)
		return
	}

	hashed, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		ac.serverError(ctx, err)
		return
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	userID, err := ac.users.CreateUser(requestCtx, user)
	if err != nil {
		ac.serverError(ctx, err)
		return
	}

	switch req.Role {
	case models.RoleStudent:
		student := &models.Student{
			UserID:     userID,
			StudentID:  req.StudentID,
			Department: req.Department,
			Year:       req.Year,
			GPA:        req.GPA,
			Phone:      req.Phone,
			Skills:     req.Skills,
		}
		if _, err := ac.students.CreateStudent(requestCtx, student); err != nil {
			ac.serverError(ctx, err)
			return
		}
	case models.RoleCompany:
		company := &models.Company{
			UserID:      userID,
			CompanyName: req.CompanyName,
			Industry:    req.Industry,
			Address:     req.Address,
			Phone:       req.Phone,
			Website:     req.Website,
		}
		if _, err := ac.companies.CreateCompany(requestCtx, company); err != nil {
			ac.serverError(ctx, err)
			return
		}
	}

	token, err := ac.tokens.GenerateToken(userID.Hex(), user.Role)
	if err != nil {
		ac.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login verifies the credentials and returns a token.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	user, err := ac.users.GetUserByEmail(ctx.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		ac.serverError(ctx, err)
		return
	}

	if !pkgauth.CheckPassword(user.Password, req.Password) {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := ac.tokens.GenerateToken(user.ID.Hex(), user.Role)
	if err != nil {
		ac.serverError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me returns the authenticated user together with its role profile.
func (ac *AuthController) Me(ctx *gin.Context) {
	user := auth.CurrentUser(ctx)
	if user == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
		return
	}

	requestCtx := ctx.Request.Context()
	response := gin.H{"user": user}

	switch user.Role {
	case models.RoleStudent:
		student, err := ac.students.GetStudentByUser(requestCtx, user.ID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			ac.serverError(ctx, err)
			return
		}
		if student != nil {
			response["profile"] = student
		}
	case models.RoleCompany:
		company, err := ac.companies.GetCompanyByUser(requestCtx, user.ID)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			ac.serverError(ctx, err)
			return
		}
		if company != nil {
			response["profile"] = company
		}
	}

	ctx.JSON(http.StatusOK, response)
}

func (ac *AuthController) serverError(ctx *gin.Context, err error) {
	ac.logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
}
