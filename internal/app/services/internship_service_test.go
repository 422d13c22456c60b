package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
)

type mockInternshipStore struct {
	byDeptTerm []*models.Internship
	byStudent  []*models.Internship
	created    []*models.Internship
	gradeErr   map[string]error // studentID -> error for UpdateGrade
	graded     []string
}

func (m *mockInternshipStore) GetInternshipsByDepartmentAndTerm(_ context.Context, _, _ int64) ([]*models.Internship, error) {
	return m.byDeptTerm, nil
}

func (m *mockInternshipStore) GetInternshipsByStudentIDs(_ context.Context, _ []string) ([]*models.Internship, error) {
	return m.byStudent, nil
}

func (m *mockInternshipStore) CreateInternship(_ context.Context, in *models.Internship) (int64, error) {
	m.created = append(m.created, in)
	return int64(len(m.created)), nil
}

func (m *mockInternshipStore) UpdateGrade(_ context.Context, studentID string, _ models.InternshipOrder, _ string, _ *string) error {
	if err, ok := m.gradeErr[studentID]; ok {
		return err
	}
	m.graded = append(m.graded, studentID)
	return nil
}

type mockStudentStore struct {
	students []models.Student
	upserted []*models.Student
}

func (m *mockStudentStore) GetStudentsByDepartment(_ context.Context, _ int64) ([]models.Student, error) {
	return m.students, nil
}

func (m *mockStudentStore) UpsertStudent(_ context.Context, s *models.Student) error {
	m.upserted = append(m.upserted, s)
	return nil
}

type mockCompanyStore struct {
	upserted []*models.Company
}

func (m *mockCompanyStore) UpsertCompanyByName(_ context.Context, c *models.Company) (int64, error) {
	m.upserted = append(m.upserted, c)
	return 77, nil
}

type mockTermStore struct {
	terms   map[int64]*models.Term
	created []*models.Term
}

func newMockTermStore() *mockTermStore {
	return &mockTermStore{terms: map[int64]*models.Term{
		1: {ID: 1, Name: "2025 Summer Internship Term"},
	}}
}

func (m *mockTermStore) GetAllTerms(_ context.Context) ([]models.Term, error) {
	var out []models.Term
	for _, t := range m.terms {
		out = append(out, *t)
	}
	return out, nil
}

func (m *mockTermStore) GetTermByID(_ context.Context, id int64) (*models.Term, error) {
	if t, ok := m.terms[id]; ok {
		return t, nil
	}
	return nil, apperrors.ErrTermNotFound
}

func (m *mockTermStore) CreateTerm(_ context.Context, term *models.Term) (int64, error) {
	m.created = append(m.created, term)
	return int64(len(m.terms) + len(m.created)), nil
}

func gradeS() *string {
	g := "S"
	return &g
}

func makeInternship(id int64, studentID string, order models.InternshipOrder, grade *string) *models.Internship {
	return &models.Internship{
		ID:              id,
		StudentID:       studentID,
		InternshipOrder: order,
		Status:          models.StatusAwaitingEvaluation,
		StartDate:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 7, 29, 0, 0, 0, 0, time.UTC),
		DurationDays:    20,
		Grade:           grade,
		Company:         &models.Company{ID: 1, Name: "ASELSAN"},
	}
}

func newListFixture() (*mockInternshipStore, *mockStudentStore, *InternshipService) {
	internships := &mockInternshipStore{
		byDeptTerm: []*models.Internship{
			makeInternship(1, "s1", models.OrderStaj1, nil),
			makeInternship(2, "s2", models.OrderStaj1, nil), // s2 has both in term
			makeInternship(3, "s2", models.OrderStaj2, gradeS()),
			makeInternship(4, "s3", models.OrderStaj2, nil),
		},
		byStudent: []*models.Internship{
			makeInternship(1, "s1", models.OrderStaj1, nil),
			makeInternship(2, "s2", models.OrderStaj1, nil),
			makeInternship(5, "s3", models.OrderStaj1, gradeS()), // earlier term
		},
	}
	students := &mockStudentStore{students: []models.Student{
		{ID: "s1", Name: "Student One"},
		{ID: "s2", Name: "Student Two"},
		{ID: "s3", Name: "Student Three"},
		{ID: "s4", Name: "No Internship This Term"},
	}}
	service := NewInternshipService(internships, students, &mockCompanyStore{}, newMockTermStore(), newMockDepartmentStore())
	return internships, students, service
}

func TestListStudents(t *testing.T) {
	_, _, service := newListFixture()

	summaries, err := service.ListStudents(context.Background(), 1, 1, GradeFilterAll, StudentTypeAll)
	if err != nil {
		t.Fatalf("ListStudents failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 students, got %d", len(summaries))
	}

	byID := make(map[string]dto.StudentSummary, len(summaries))
	for _, s := range summaries {
		byID[s.ID] = s
	}

	// s2 holds both internships this term; the second one wins as current.
	s2 := byID["s2"]
	if s2.CurrentInternship == nil || s2.CurrentInternship.InternshipOrder != models.OrderStaj2 {
		t.Errorf("s2 current internship should be the second one, got %+v", s2.CurrentInternship)
	}
	if s2.PreviousInternship == nil || s2.PreviousInternship.InternshipOrder != models.OrderStaj1 {
		t.Errorf("s2 should carry its first internship as previous, got %+v", s2.PreviousInternship)
	}

	// s1 is on the first internship, no previous record.
	s1 := byID["s1"]
	if s1.CurrentInternship == nil || s1.CurrentInternship.InternshipOrder != models.OrderStaj1 {
		t.Errorf("unexpected current internship for s1: %+v", s1.CurrentInternship)
	}
	if s1.PreviousInternship != nil {
		t.Errorf("s1 should have no previous internship, got %+v", s1.PreviousInternship)
	}

	// Dates are serialized in ISO form.
	if s1.CurrentInternship.StartDate != "2025-07-01" {
		t.Errorf("unexpected start date: %s", s1.CurrentInternship.StartDate)
	}
}

// The student list clients read the company name from the "company" key of
// each internship payload.
func TestListStudentsCompanyKey(t *testing.T) {
	_, _, service := newListFixture()

	summaries, err := service.ListStudents(context.Background(), 1, 1, GradeFilterAll, StudentTypeAll)
	if err != nil {
		t.Fatalf("ListStudents failed: %v", err)
	}
	data, err := json.Marshal(summaries)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !bytes.Contains(data, []byte(`"company":`)) {
		t.Error(`payload should expose the company name under "company"`)
	}
	if bytes.Contains(data, []byte(`"companyName":`)) {
		t.Error(`payload must not carry a "companyName" key`)
	}
}

func TestListStudentsFilters(t *testing.T) {
	_, _, service := newListFixture()

	t.Run("By student type", func(t *testing.T) {
		second, err := service.ListStudents(context.Background(), 1, 1, GradeFilterAll, StudentTypeSecond)
		if err != nil {
			t.Fatalf("ListStudents failed: %v", err)
		}
		if len(second) != 2 {
			t.Fatalf("expected s2 and s3, got %d students", len(second))
		}
		for _, s := range second {
			if s.CurrentInternship.InternshipOrder != models.OrderStaj2 {
				t.Errorf("student %s does not match the filter", s.ID)
			}
		}
	})

	t.Run("By grade", func(t *testing.T) {
		graded, err := service.ListStudents(context.Background(), 1, 1, "S", StudentTypeAll)
		if err != nil {
			t.Fatalf("ListStudents failed: %v", err)
		}
		if len(graded) != 1 || graded[0].ID != "s2" {
			t.Errorf("expected only s2 with grade S, got %+v", graded)
		}

		ungraded, err := service.ListStudents(context.Background(), 1, 1, GradeFilterUngraded, StudentTypeAll)
		if err != nil {
			t.Fatalf("ListStudents failed: %v", err)
		}
		if len(ungraded) != 2 {
			t.Errorf("expected s1 and s3 ungraded, got %d", len(ungraded))
		}
	})

	t.Run("Unknown term", func(t *testing.T) {
		if _, err := service.ListStudents(context.Background(), 1, 99, GradeFilterAll, StudentTypeAll); !errors.Is(err, apperrors.ErrTermNotFound) {
			t.Errorf("expected ErrTermNotFound, got %v", err)
		}
	})
}

func TestBulkGradePartialFailure(t *testing.T) {
	internships := &mockInternshipStore{gradeErr: map[string]error{
		"missing": apperrors.ErrInternshipNotFound,
	}}
	service := NewInternshipService(internships, &mockStudentStore{}, &mockCompanyStore{}, newMockTermStore(), newMockDepartmentStore())

	resp, err := service.BulkGrade(context.Background(), &dto.BulkGradeRequest{Grades: []dto.BulkGradeEntry{
		{StudentID: "s1", InternshipOrder: models.OrderStaj1, Grade: "S"},
		{StudentID: "s2", InternshipOrder: "STAJ3", Grade: "S"},
		{StudentID: "s3", InternshipOrder: models.OrderStaj1, Grade: "A"},
		{StudentID: "missing", InternshipOrder: models.OrderStaj2, Grade: "U"},
		{StudentID: "s5", InternshipOrder: models.OrderStaj2, Grade: "U", GradeComment: "eksik rapor"},
	}})
	if err != nil {
		t.Fatalf("BulkGrade failed: %v", err)
	}

	if resp.SuccessCount != 2 || resp.FailureCount != 3 {
		t.Errorf("expected 2 successes and 3 failures, got %d/%d", resp.SuccessCount, resp.FailureCount)
	}
	if len(resp.Results) != 5 {
		t.Fatalf("every entry must be reported, got %d results", len(resp.Results))
	}

	if resp.Results[1].Error != "Geçersiz staj sırası." {
		t.Errorf("unexpected order error: %q", resp.Results[1].Error)
	}
	if resp.Results[2].Error != "Geçersiz not değeri." {
		t.Errorf("unexpected grade error: %q", resp.Results[2].Error)
	}
	if resp.Results[3].Error != "Staj kaydı bulunamadı." {
		t.Errorf("unexpected missing-record error: %q", resp.Results[3].Error)
	}
	if !resp.Results[0].Success || !resp.Results[4].Success {
		t.Error("valid entries should succeed despite failures around them")
	}
}

func TestCreateInternship(t *testing.T) {
	internships := &mockInternshipStore{}
	students := &mockStudentStore{}
	companies := &mockCompanyStore{}
	service := NewInternshipService(internships, students, companies, newMockTermStore(), newMockDepartmentStore())

	req := &dto.CreateInternshipRequest{
		StudentID:       "220104004001",
		StudentName:     "Ahmet Yılmaz",
		DepartmentID:    1,
		TermID:          1,
		InternshipOrder: models.OrderStaj1,
		CompanyName:     "ASELSAN",
		StartDate:       "2025-07-01",
		EndDate:         "2025-07-20",
	}

	in, err := service.CreateInternship(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateInternship failed: %v", err)
	}

	if in.DurationDays != 20 {
		t.Errorf("duration should default to the inclusive day span, got %d", in.DurationDays)
	}
	if in.Status != models.StatusAwaitingEvaluation {
		t.Errorf("past internship should await evaluation, got %s", in.Status)
	}
	if in.CompanyID != 77 {
		t.Errorf("expected the upserted company id, got %d", in.CompanyID)
	}
	if len(students.upserted) != 1 || students.upserted[0].ID != "220104004001" {
		t.Error("student record should be upserted")
	}
	if in.CompanyContactName != nil {
		t.Error("empty contact fields should stay null")
	}

	t.Run("Future internship stays in progress", func(t *testing.T) {
		future := *req
		start := time.Now().AddDate(0, 1, 0)
		future.StartDate = start.Format("2006-01-02")
		future.EndDate = start.AddDate(0, 0, 19).Format("2006-01-02")

		in, err := service.CreateInternship(context.Background(), &future)
		if err != nil {
			t.Fatalf("CreateInternship failed: %v", err)
		}
		if in.Status != models.StatusInProgress {
			t.Errorf("expected IN_PROGRESS, got %s", in.Status)
		}
	})

	t.Run("Invalid order", func(t *testing.T) {
		bad := *req
		bad.InternshipOrder = "STAJ3"
		if _, err := service.CreateInternship(context.Background(), &bad); !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("expected bad request, got %v", err)
		}
	})

	t.Run("End before start", func(t *testing.T) {
		bad := *req
		bad.StartDate = "2025-07-20"
		bad.EndDate = "2025-07-01"
		if _, err := service.CreateInternship(context.Background(), &bad); !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("expected bad request, got %v", err)
		}
	})
}
