package services

import (
	"context"
	"fmt"

	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/pkg/report"
)

// studentLister provides the filtered student listing the report is built
// from. Implemented by InternshipService.
type studentLister interface {
	ListStudents(ctx context.Context, departmentID, termID int64, gradeFilter, studentTypeFilter string) ([]dto.StudentSummary, error)
}

// ReportService renders internship evaluation reports as DOCX files
type ReportService struct {
	lister         studentLister
	termRepo       termStore
	departmentRepo departmentStore
}

// NewReportService creates a new report service instance
func NewReportService(lister studentLister, termRepo termStore, departmentRepo departmentStore) *ReportService {
	return &ReportService{
		lister:         lister,
		termRepo:       termRepo,
		departmentRepo: departmentRepo,
	}
}

var reportHeaders = []string{
	"Öğrenci No", "Adı Soyadı", "Firma", "Staj", "Başlangıç", "Bitiş", "Süre (gün)", "Not",
}

// GenerateReport builds the evaluation report for a department and term and
// returns the document bytes together with a download filename. The same
// grade and student type filters as the student listing apply; a non-empty
// StudentIDs list further restricts the rows.
func (s *ReportService) GenerateReport(ctx context.Context, req *dto.GenerateReportRequest) ([]byte, string, error) {
	department, err := s.departmentRepo.GetDepartmentByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, "", err
	}
	term, err := s.termRepo.GetTermByID(ctx, req.TermID)
	if err != nil {
		return nil, "", err
	}

	gradeFilter := GradeFilterAll
	if req.GradeFilter != nil && *req.GradeFilter != "" {
		gradeFilter = *req.GradeFilter
	}
	typeFilter := StudentTypeAll
	if req.StudentTypeFilter != nil && *req.StudentTypeFilter != "" {
		typeFilter = *req.StudentTypeFilter
	}

	students, err := s.lister.ListStudents(ctx, department.ID, term.ID, gradeFilter, typeFilter)
	if err != nil {
		return nil, "", err
	}

	var wanted map[string]bool
	if len(req.StudentIDs) > 0 {
		wanted = make(map[string]bool, len(req.StudentIDs))
		for _, id := range req.StudentIDs {
			wanted[id] = true
		}
	}

	rows := make([][]string, 0, len(students))
	for _, st := range students {
		if wanted != nil && !wanted[st.ID] {
			continue
		}
		rows = append(rows, reportRow(st))
	}

	doc := report.Document{
		Title:   fmt.Sprintf("%s %s Staj Değerlendirme Raporu", department.Name, term.Name),
		Headers: reportHeaders,
		Rows:    rows,
	}
	data, err := report.Build(doc)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("staj-raporu-%d-%d.docx", department.ID, term.ID)
	return data, filename, nil
}

func reportRow(st dto.StudentSummary) []string {
	row := []string{st.StudentNumber, st.Name, "", "", "", "", "", "-"}
	in := st.CurrentInternship
	if in == nil {
		return row
	}
	row[2] = in.CompanyName
	switch in.InternshipOrder {
	case "STAJ1":
		row[3] = "Staj 1"
	case "STAJ2":
		row[3] = "Staj 2"
	}
	row[4] = in.StartDate
	row[5] = in.EndDate
	row[6] = fmt.Sprintf("%d", in.DurationDays)
	if in.Grade != nil {
		row[7] = *in.Grade
	}
	return row
}
