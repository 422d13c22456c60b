package services

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/app/models/dto"
)

type mockStudentLister struct {
	students []dto.StudentSummary
	gotGrade string
	gotType  string
}

func (m *mockStudentLister) ListStudents(_ context.Context, _, _ int64, gradeFilter, studentTypeFilter string) ([]dto.StudentSummary, error) {
	m.gotGrade = gradeFilter
	m.gotType = studentTypeFilter
	return m.students, nil
}

func readReportBody(t *testing.T, data []byte) string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("report is not a valid docx archive: %v", err)
	}
	for _, f := range reader.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open document part: %v", err)
		}
		defer rc.Close()
		body, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("failed to read document part: %v", err)
		}
		return string(body)
	}
	t.Fatal("word/document.xml missing from report")
	return ""
}

func TestGenerateReport(t *testing.T) {
	lister := &mockStudentLister{students: []dto.StudentSummary{
		{
			ID: "s1", StudentNumber: "220104004001", Name: "Ahmet Yılmaz",
			CurrentInternship: &dto.InternshipSummary{
				InternshipOrder: models.OrderStaj1,
				CompanyName:     "ASELSAN",
				StartDate:       "2025-07-01",
				EndDate:         "2025-07-29",
				DurationDays:    20,
				Grade:           gradeS(),
			},
		},
		{ID: "s2", StudentNumber: "220104004002", Name: "Zeynep Kaya"},
	}}
	service := NewReportService(lister, newMockTermStore(), newMockDepartmentStore())

	data, filename, err := service.GenerateReport(context.Background(), &dto.GenerateReportRequest{
		TermID:       1,
		DepartmentID: 1,
	})
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	if filename != "staj-raporu-1-1.docx" {
		t.Errorf("unexpected filename: %s", filename)
	}
	if lister.gotGrade != GradeFilterAll || lister.gotType != StudentTypeAll {
		t.Errorf("filters should default to all, got %q/%q", lister.gotGrade, lister.gotType)
	}

	body := readReportBody(t, data)
	if !strings.Contains(body, "Computer Engineering 2025 Summer Internship Term Staj Değerlendirme Raporu") {
		t.Error("report title missing")
	}
	if !strings.Contains(body, "ASELSAN") || !strings.Contains(body, "Zeynep Kaya") {
		t.Error("report rows missing")
	}
}

func TestGenerateReportStudentSubset(t *testing.T) {
	lister := &mockStudentLister{students: []dto.StudentSummary{
		{ID: "s1", StudentNumber: "1", Name: "Keep Me"},
		{ID: "s2", StudentNumber: "2", Name: "Drop Me"},
	}}
	service := NewReportService(lister, newMockTermStore(), newMockDepartmentStore())

	data, _, err := service.GenerateReport(context.Background(), &dto.GenerateReportRequest{
		TermID:       1,
		DepartmentID: 1,
		StudentIDs:   []string{"s1"},
	})
	if err != nil {
		t.Fatalf("GenerateReport failed: %v", err)
	}

	body := readReportBody(t, data)
	if !strings.Contains(body, "Keep Me") {
		t.Error("selected student missing from report")
	}
	if strings.Contains(body, "Drop Me") {
		t.Error("unselected student should not appear in report")
	}
}
