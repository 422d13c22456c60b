package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oguzk/stajtakip/internal/legacy/auth"
	"github.com/oguzk/stajtakip/internal/legacy/models"
	"github.com/oguzk/stajtakip/internal/legacy/repositories"
)

type mockApplicationRepo struct {
	applications map[primitive.ObjectID]*models.Application
	deleted      []primitive.ObjectID
}

func newMockApplicationRepo() *mockApplicationRepo {
	return &mockApplicationRepo{applications: make(map[primitive.ObjectID]*models.Application)}
}

func (m *mockApplicationRepo) ListApplications(_ context.Context, studentID *primitive.ObjectID) ([]models.Application, error) {
	var out []models.Application
	for _, a := range m.applications {
		if studentID == nil || a.StudentID == *studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) GetApplicationByID(_ context.Context, id primitive.ObjectID) (*models.Application, error) {
	if a, ok := m.applications[id]; ok {
		found := *a
		return &found, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockApplicationRepo) GetApplicationByInternshipAndStudent(_ context.Context, internshipID, studentID primitive.ObjectID) (*models.Application, error) {
	for _, a := range m.applications {
		if a.InternshipID == internshipID && a.StudentID == studentID {
			found := *a
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockApplicationRepo) CreateApplication(_ context.Context, application *models.Application) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	application.ID = id
	if application.Status == "" {
		application.Status = models.ApplicationPending
	}
	m.applications[id] = application
	return id, nil
}

func (m *mockApplicationRepo) UpdateApplicationStatus(_ context.Context, id primitive.ObjectID, status string) error {
	a, ok := m.applications[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Status = status
	return nil
}

func (m *mockApplicationRepo) SetApplicationEvaluation(_ context.Context, id primitive.ObjectID, evaluation models.Evaluation) error {
	a, ok := m.applications[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Evaluation = &evaluation
	return nil
}

func (m *mockApplicationRepo) DeleteApplication(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.applications[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.applications, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockStudentRepo struct {
	byUser map[primitive.ObjectID]*models.Student
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{byUser: make(map[primitive.ObjectID]*models.Student)}
}

func (m *mockStudentRepo) CreateStudent(_ context.Context, student *models.Student) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	student.ID = id
	m.byUser[student.UserID] = student
	return id, nil
}

func (m *mockStudentRepo) GetStudentByUser(_ context.Context, userID primitive.ObjectID) (*models.Student, error) {
	if s, ok := m.byUser[userID]; ok {
		return s, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockStudentRepo) GetStudentByID(_ context.Context, id primitive.ObjectID) (*models.Student, error) {
	for _, s := range m.byUser {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

type mockInternshipRepo struct {
	internships map[primitive.ObjectID]*models.Internship
}

func newMockInternshipRepo() *mockInternshipRepo {
	return &mockInternshipRepo{internships: make(map[primitive.ObjectID]*models.Internship)}
}

func (m *mockInternshipRepo) ListInternships(_ context.Context, _ repositories.InternshipFilter) ([]models.Internship, error) {
	var out []models.Internship
	for _, in := range m.internships {
		out = append(out, *in)
	}
	return out, nil
}

func (m *mockInternshipRepo) GetInternshipByID(_ context.Context, id primitive.ObjectID) (*models.Internship, error) {
	if in, ok := m.internships[id]; ok {
		found := *in
		return &found, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockInternshipRepo) CreateInternship(_ context.Context, in *models.Internship) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	in.ID = id
	m.internships[id] = in
	return id, nil
}

func (m *mockInternshipRepo) UpdateInternship(_ context.Context, in *models.Internship) error {
	if _, ok := m.internships[in.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	m.internships[in.ID] = in
	return nil
}

func (m *mockInternshipRepo) DeleteInternship(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.internships[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.internships, id)
	return nil
}

type applicationFixture struct {
	applications *mockApplicationRepo
	students     *mockStudentRepo
	internships  *mockInternshipRepo
	router       *gin.Engine
	user         *models.User
}

// newApplicationFixture wires the controller behind a router that injects
// the given user the way the auth middleware would.
func newApplicationFixture(user *models.User) *applicationFixture {
	gin.SetMode(gin.TestMode)

	f := &applicationFixture{
		applications: newMockApplicationRepo(),
		students:     newMockStudentRepo(),
		internships:  newMockInternshipRepo(),
		user:         user,
	}

	controller := NewApplicationController(f.applications, f.students, f.internships, zerolog.Nop())

	f.router = gin.New()
	f.router.Use(func(ctx *gin.Context) {
		ctx.Set(auth.ContextUser, user)
	})
	f.router.GET("/api/applications", controller.ListApplications)
	f.router.POST("/api/applications", controller.CreateApplication)
	f.router.PUT("/api/applications/:id/status", controller.UpdateStatus)
	f.router.PUT("/api/applications/:id/evaluate", controller.Evaluate)
	f.router.DELETE("/api/applications/:id", controller.DeleteApplication)
	return f
}

func (f *applicationFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func studentUser() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Email: "student@example.com", Role: models.RoleStudent}
}

func adminUser() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Email: "admin@example.com", Role: models.RoleAdmin}
}

func TestCreateApplication(t *testing.T) {
	user := studentUser()
	f := newApplicationFixture(user)

	student := &models.Student{UserID: user.ID, StudentID: "S-100"}
	f.students.CreateStudent(context.Background(), student)

	internship := &models.Internship{Title: "Backend Intern", Status: models.InternshipOpen}
	internshipID, _ := f.internships.CreateInternship(context.Background(), internship)

	payload := map[string]string{"internship": internshipID.Hex(), "coverLetter": "Merhaba"}

	w := f.do(http.MethodPost, "/api/applications", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var created models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if created.Status != models.ApplicationPending {
		t.Errorf("new application should be pending, got %s", created.Status)
	}

	t.Run("Duplicate application rejected", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/applications", payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := w.Body.String(); !bytes.Contains([]byte(body), []byte("already applied")) {
			t.Errorf("unexpected body: %s", body)
		}
	})

	t.Run("Unknown internship", func(t *testing.T) {
		w := f.do(http.MethodPost, "/api/applications", map[string]string{"internship": primitive.NewObjectID().Hex()})
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestListApplicationsStudentSeesOwn(t *testing.T) {
	user := studentUser()
	f := newApplicationFixture(user)

	student := &models.Student{UserID: user.ID}
	f.students.CreateStudent(context.Background(), student)

	own := &models.Application{StudentID: student.ID, InternshipID: primitive.NewObjectID()}
	other := &models.Application{StudentID: primitive.NewObjectID(), InternshipID: primitive.NewObjectID()}
	f.applications.CreateApplication(context.Background(), own)
	f.applications.CreateApplication(context.Background(), other)

	w := f.do(http.MethodGet, "/api/applications", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var listed []models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(listed) != 1 || listed[0].ID != own.ID {
		t.Errorf("student should only see own applications, got %+v", listed)
	}
}

func TestDeleteApplicationStudentRules(t *testing.T) {
	user := studentUser()
	f := newApplicationFixture(user)

	student := &models.Student{UserID: user.ID}
	f.students.CreateStudent(context.Background(), student)

	t.Run("Own pending application", func(t *testing.T) {
		app := &models.Application{StudentID: student.ID, Status: models.ApplicationPending}
		id, _ := f.applications.CreateApplication(context.Background(), app)

		w := f.do(http.MethodDelete, "/api/applications/"+id.Hex(), nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Own accepted application", func(t *testing.T) {
		app := &models.Application{StudentID: student.ID, Status: models.ApplicationAccepted}
		id, _ := f.applications.CreateApplication(context.Background(), app)

		w := f.do(http.MethodDelete, "/api/applications/"+id.Hex(), nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("non-pending application must not be deletable, got %d", w.Code)
		}
	})

	t.Run("Someone else's application", func(t *testing.T) {
		app := &models.Application{StudentID: primitive.NewObjectID(), Status: models.ApplicationPending}
		id, _ := f.applications.CreateApplication(context.Background(), app)

		w := f.do(http.MethodDelete, "/api/applications/"+id.Hex(), nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestUpdateStatusValidation(t *testing.T) {
	f := newApplicationFixture(adminUser())

	app := &models.Application{StudentID: primitive.NewObjectID(), Status: models.ApplicationPending}
	id, _ := f.applications.CreateApplication(context.Background(), app)

	w := f.do(http.MethodPut, "/api/applications/"+id.Hex()+"/status", map[string]string{"status": "archived"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown status should get 400, got %d", w.Code)
	}

	// Any known status is accepted regardless of the current one.
	w = f.do(http.MethodPut, "/api/applications/"+id.Hex()+"/status", map[string]string{"status": models.ApplicationCompleted})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Application
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if updated.Status != models.ApplicationCompleted {
		t.Errorf("status not applied, got %s", updated.Status)
	}
}

func TestEvaluate(t *testing.T) {
	user := adminUser()
	f := newApplicationFixture(user)

	app := &models.Application{StudentID: primitive.NewObjectID(), Status: models.ApplicationCompleted}
	id, _ := f.applications.CreateApplication(context.Background(), app)

	t.Run("Rating out of range", func(t *testing.T) {
		w := f.do(http.MethodPut, "/api/applications/"+id.Hex()+"/evaluate", map[string]interface{}{"rating": 6})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Stamps evaluator and time", func(t *testing.T) {
		w := f.do(http.MethodPut, "/api/applications/"+id.Hex()+"/evaluate", map[string]interface{}{
			"rating":   4,
			"feedback": "Başarılı bir staj dönemi",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var evaluated models.Application
		if err := json.Unmarshal(w.Body.Bytes(), &evaluated); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if evaluated.Evaluation == nil {
			t.Fatal("evaluation missing from response")
		}
		if evaluated.Evaluation.Rating != 4 {
			t.Errorf("unexpected rating: %d", evaluated.Evaluation.Rating)
		}
		if evaluated.Evaluation.EvaluatedBy == nil || *evaluated.Evaluation.EvaluatedBy != user.ID {
			t.Error("evaluator should be stamped from the authenticated user")
		}
		if evaluated.Evaluation.EvaluatedAt == nil {
			t.Error("evaluation time should be stamped")
		}
	})
}
