package routes

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/stajtakip/internal/app/controllers"
	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/app/repositories"
	"github.com/oguzk/stajtakip/internal/app/services"
	"github.com/oguzk/stajtakip/internal/middleware"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/auth"
)

// Stub stores so a real router can be assembled without a database. The
// handlers only need to get past the middleware chain; results stay empty.

type stubUserStore struct{}

func (stubUserStore) GetUserByEmail(context.Context, string) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (stubUserStore) GetAllUsers(context.Context) ([]*models.User, error) { return nil, nil }
func (stubUserStore) CreateUser(context.Context, *models.User) (int64, error) {
	return 1, nil
}
func (stubUserStore) UpdatePassword(context.Context, string, string) error    { return nil }
func (stubUserStore) UpdatePasswordByID(context.Context, int64, string) error { return nil }
func (stubUserStore) GetUsersByRole(context.Context, int64) ([]*models.User, error) {
	return nil, nil
}
func (stubUserStore) GetUserByDepartmentAndRole(context.Context, int64, int64) (*models.User, error) {
	return nil, apperrors.ErrUserNotFound
}
func (stubUserStore) ReplaceDepartmentChair(context.Context, int64, int64, *models.User) (int64, error) {
	return 1, nil
}
func (stubUserStore) UpdateUserDepartment(context.Context, int64, int64) error { return nil }
func (stubUserStore) DeleteUser(context.Context, int64) error                  { return nil }
func (stubUserStore) GetCommissionMembership(context.Context, int64, int64) ([]repositories.CommissionMemberRow, error) {
	return nil, nil
}

type stubRoleStore struct{}

func (stubRoleStore) GetRoleByID(_ context.Context, id int64) (*models.Role, error) {
	return &models.Role{ID: id, Name: models.RoleGeneralAdmin}, nil
}
func (stubRoleStore) GetRoleByName(_ context.Context, name string) (*models.Role, error) {
	return &models.Role{ID: 1, Name: name}, nil
}

type stubDepartmentStore struct{}

func (stubDepartmentStore) GetAllDepartments(context.Context) ([]models.Department, error) {
	return nil, nil
}
func (stubDepartmentStore) GetDepartmentByID(_ context.Context, id int64) (*models.Department, error) {
	return &models.Department{ID: id, Name: "Computer Engineering"}, nil
}

type stubTermStore struct{}

func (stubTermStore) GetAllTerms(context.Context) ([]models.Term, error) { return nil, nil }
func (stubTermStore) GetTermByID(_ context.Context, id int64) (*models.Term, error) {
	return &models.Term{ID: id, Name: "2025 Summer Internship Term"}, nil
}
func (stubTermStore) CreateTerm(context.Context, *models.Term) (int64, error) { return 1, nil }

type stubInternshipStore struct{}

func (stubInternshipStore) GetInternshipsByDepartmentAndTerm(context.Context, int64, int64) ([]*models.Internship, error) {
	return nil, nil
}
func (stubInternshipStore) GetInternshipsByStudentIDs(context.Context, []string) ([]*models.Internship, error) {
	return nil, nil
}
func (stubInternshipStore) CreateInternship(context.Context, *models.Internship) (int64, error) {
	return 1, nil
}
func (stubInternshipStore) UpdateGrade(context.Context, string, models.InternshipOrder, string, *string) error {
	return nil
}

type stubStudentStore struct{}

func (stubStudentStore) GetStudentsByDepartment(context.Context, int64) ([]models.Student, error) {
	return nil, nil
}
func (stubStudentStore) UpsertStudent(context.Context, *models.Student) error { return nil }

type stubCompanyStore struct{}

func (stubCompanyStore) UpsertCompanyByName(context.Context, *models.Company) (int64, error) {
	return 1, nil
}

type stubFileStorage struct{}

func (stubFileStorage) SaveFile(*multipart.FileHeader) (string, error) { return "/uploads/x", nil }
func (stubFileStorage) SaveFileWithPath(*multipart.FileHeader, string) (string, error) {
	return "/uploads/x", nil
}
func (stubFileStorage) DeleteFile(string) error           { return nil }
func (stubFileStorage) GetFullPath(fileURL string) string { return fileURL }

type stubExtractor struct{}

func (stubExtractor) ExtractText(context.Context, io.Reader) (string, error) { return "", nil }

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "stajtakip",
	})

	authService := services.NewAuthService(stubUserStore{}, stubRoleStore{}, jwtService)
	commissionService := services.NewCommissionService(stubUserStore{}, stubRoleStore{}, stubDepartmentStore{})
	termService := services.NewTermService(stubTermStore{})
	internshipService := services.NewInternshipService(stubInternshipStore{}, stubStudentStore{}, stubCompanyStore{}, stubTermStore{}, stubDepartmentStore{})
	reportService := services.NewReportService(internshipService, stubTermStore{}, stubDepartmentStore{})
	documentService := services.NewDocumentService(stubFileStorage{}, stubExtractor{})

	log := zerolog.Nop()
	router := gin.New()
	SetupRouter(router,
		controllers.NewAuthController(authService, log),
		controllers.NewCommissionController(commissionService, log),
		controllers.NewTermController(termService, log),
		controllers.NewInternshipController(internshipService, reportService, documentService, log),
		middleware.NewAuthMiddleware(jwtService),
		middleware.NewRateLimiter(1000, time.Minute),
		middleware.NewRateLimiter(1000, time.Minute),
	)
	return router, jwtService
}

func getStatus(router *gin.Engine, method, path, token string) int {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

// The admin and chair screens call these endpoints with plain axios and no
// Authorization header; none of them may demand a token.
func TestOpenEndpointsNeedNoToken(t *testing.T) {
	router, _ := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/terms"},
		{http.MethodGet, "/api/departments"},
		{http.MethodGet, "/api/department-chair/1"},
		{http.MethodGet, "/api/students/1/1"},
		{http.MethodGet, "/api/kullanicilar"},
		{http.MethodGet, "/api/commission-chairs"},
		{http.MethodGet, "/api/commission-status"},
	}
	for _, p := range paths {
		if code := getStatus(router, p.method, p.path, ""); code == http.StatusUnauthorized {
			t.Errorf("%s %s must be reachable without a token, got 401", p.method, p.path)
		}
	}
}

func TestEvaluationEndpointsRequireToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	protected := []string{"/api/grade-internships-bulk", "/api/internship/generate-report"}
	for _, path := range protected {
		if code := getStatus(router, http.MethodPost, path, ""); code != http.StatusUnauthorized {
			t.Errorf("POST %s without a token should yield 401, got %d", path, code)
		}
	}

	token, err := jwtService.GenerateToken(1, "admin@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	for _, path := range protected {
		if code := getStatus(router, http.MethodPost, path, token); code == http.StatusUnauthorized {
			t.Errorf("POST %s with a valid token must pass the middleware, got 401", path)
		}
	}
}
