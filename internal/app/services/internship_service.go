package services

import (
	"context"
	"errors"
	"time"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/helpers"
	"github.com/oguzk/stajtakip/internal/pkg/logger"
)

// Grade filter values accepted by student listings.
const (
	GradeFilterAll      = "all"
	GradeFilterUngraded = "ungraded"
)

// Student type filter values accepted by student listings.
const (
	StudentTypeAll    = "all"
	StudentTypeFirst  = "first"
	StudentTypeSecond = "second"
)

type internshipStore interface {
	GetInternshipsByDepartmentAndTerm(ctx context.Context, departmentID, termID int64) ([]*models.Internship, error)
	GetInternshipsByStudentIDs(ctx context.Context, studentIDs []string) ([]*models.Internship, error)
	CreateInternship(ctx context.Context, in *models.Internship) (int64, error)
	UpdateGrade(ctx context.Context, studentID string, order models.InternshipOrder, grade string, comment *string) error
}

type studentStore interface {
	GetStudentsByDepartment(ctx context.Context, departmentID int64) ([]models.Student, error)
	UpsertStudent(ctx context.Context, s *models.Student) error
}

type companyStore interface {
	UpsertCompanyByName(ctx context.Context, company *models.Company) (int64, error)
}

// InternshipService manages internship records, student listings and
// bulk evaluation
type InternshipService struct {
	internshipRepo internshipStore
	studentRepo    studentStore
	companyRepo    companyStore
	termRepo       termStore
	departmentRepo departmentStore
}

// NewInternshipService creates a new internship service instance
func NewInternshipService(internshipRepo internshipStore, studentRepo studentStore, companyRepo companyStore, termRepo termStore, departmentRepo departmentStore) *InternshipService {
	return &InternshipService{
		internshipRepo: internshipRepo,
		studentRepo:    studentRepo,
		companyRepo:    companyRepo,
		termRepo:       termRepo,
		departmentRepo: departmentRepo,
	}
}

// optionalString maps the empty string to NULL for nullable columns.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toInternshipSummary(in *models.Internship) *dto.InternshipSummary {
	summary := &dto.InternshipSummary{
		ID:              in.ID,
		InternshipOrder: in.InternshipOrder,
		Status:          in.Status,
		StartDate:       helpers.ToISODate(in.StartDate),
		EndDate:         helpers.ToISODate(in.EndDate),
		DurationDays:    in.DurationDays,
		Grade:           in.Grade,
		GradeComment:    in.GradeComment,
		IsErasmus:       in.IsErasmus,
	}
	if in.Company != nil {
		summary.CompanyName = in.Company.Name
	}
	return summary
}

// ListStudents returns the students of a department that hold an internship
// in the given term, each with its current internship and, for second
// internships, the earlier one. Both filters default to "all".
func (s *InternshipService) ListStudents(ctx context.Context, departmentID, termID int64, gradeFilter, studentTypeFilter string) ([]dto.StudentSummary, error) {
	if _, err := s.departmentRepo.GetDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}
	if _, err := s.termRepo.GetTermByID(ctx, termID); err != nil {
		return nil, err
	}

	current, err := s.internshipRepo.GetInternshipsByDepartmentAndTerm(ctx, departmentID, termID)
	if err != nil {
		return nil, err
	}

	// The student's internship this term; STAJ2 wins when both fall in
	// the same term.
	currentByStudent := make(map[string]*models.Internship)
	studentIDs := make([]string, 0, len(current))
	for _, in := range current {
		existing, ok := currentByStudent[in.StudentID]
		if !ok {
			studentIDs = append(studentIDs, in.StudentID)
		}
		if !ok || in.InternshipOrder == models.OrderStaj2 && existing.InternshipOrder == models.OrderStaj1 {
			currentByStudent[in.StudentID] = in
		}
	}

	all, err := s.internshipRepo.GetInternshipsByStudentIDs(ctx, studentIDs)
	if err != nil {
		return nil, err
	}
	firstByStudent := make(map[string]*models.Internship)
	for _, in := range all {
		if in.InternshipOrder == models.OrderStaj1 {
			firstByStudent[in.StudentID] = in
		}
	}

	students, err := s.studentRepo.GetStudentsByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.StudentSummary, 0, len(studentIDs))
	for _, st := range students {
		cur, ok := currentByStudent[st.ID]
		if !ok {
			continue
		}
		if !matchStudentType(cur, studentTypeFilter) || !matchGrade(cur, gradeFilter) {
			continue
		}

		summary := dto.StudentSummary{
			ID:                st.ID,
			StudentNumber:     st.ID,
			Name:              st.Name,
			Email:             st.Email,
			PhoneNumber:       st.PhoneNumber,
			CurrentInternship: toInternshipSummary(cur),
		}
		if cur.InternshipOrder == models.OrderStaj2 {
			if prev, ok := firstByStudent[st.ID]; ok && prev.ID != cur.ID {
				summary.PreviousInternship = toInternshipSummary(prev)
			}
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func matchStudentType(in *models.Internship, filter string) bool {
	switch filter {
	case StudentTypeFirst:
		return in.InternshipOrder == models.OrderStaj1
	case StudentTypeSecond:
		return in.InternshipOrder == models.OrderStaj2
	default:
		return true
	}
}

func matchGrade(in *models.Internship, filter string) bool {
	switch filter {
	case "", GradeFilterAll:
		return true
	case GradeFilterUngraded:
		return in.Grade == nil
	default:
		return in.Grade != nil && *in.Grade == filter
	}
}

// BulkGrade applies a batch of evaluation results. Entries fail
// individually; one bad entry never aborts the rest of the batch.
func (s *InternshipService) BulkGrade(ctx context.Context, req *dto.BulkGradeRequest) (*dto.BulkGradeResponse, error) {
	resp := &dto.BulkGradeResponse{Results: make([]dto.BulkGradeResult, 0, len(req.Grades))}

	for _, entry := range req.Grades {
		result := dto.BulkGradeResult{
			StudentID:       entry.StudentID,
			InternshipOrder: entry.InternshipOrder,
		}

		switch {
		case !models.IsValidOrder(entry.InternshipOrder):
			result.Error = "Geçersiz staj sırası."
		case !models.IsValidGrade(entry.Grade):
			result.Error = "Geçersiz not değeri."
		default:
			var comment *string
			if entry.GradeComment != "" {
				comment = &entry.GradeComment
			}
			err := s.internshipRepo.UpdateGrade(ctx, entry.StudentID, entry.InternshipOrder, entry.Grade, comment)
			switch {
			case err == nil:
				result.Success = true
			case errors.Is(err, apperrors.ErrInternshipNotFound):
				result.Error = "Staj kaydı bulunamadı."
			default:
				logger.Error().Err(err).
					Str("studentId", entry.StudentID).
					Msg("Grade update failed")
				result.Error = "Not kaydedilirken bir hata oluştu."
			}
		}

		if result.Success {
			resp.SuccessCount++
		} else {
			resp.FailureCount++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

// CreateInternship registers an internship for a student, creating or
// refreshing the student and company records on the way. A student can hold
// only one internship per order.
func (s *InternshipService) CreateInternship(ctx context.Context, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	if !models.IsValidOrder(req.InternshipOrder) {
		return nil, apperrors.NewBadRequestError("invalid internship order")
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid start date")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid end date")
	}
	if end.Before(start) {
		return nil, apperrors.NewBadRequestError("end date must not precede start date")
	}

	department, err := s.departmentRepo.GetDepartmentByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	term, err := s.termRepo.GetTermByID(ctx, req.TermID)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.UpsertStudent(ctx, &models.Student{
		ID:           req.StudentID,
		Name:         req.StudentName,
		Email:        req.StudentEmail,
		PhoneNumber:  req.StudentPhone,
		DepartmentID: department.ID,
	}); err != nil {
		return nil, err
	}

	companyID, err := s.companyRepo.UpsertCompanyByName(ctx, &models.Company{
		Name:  req.CompanyName,
		Phone: req.CompanyPhone,
		Email: req.CompanyEmail,
	})
	if err != nil {
		return nil, err
	}

	duration := req.DurationDays
	if duration <= 0 {
		duration = int(end.Sub(start).Hours()/24) + 1
	}
	status := models.StatusInProgress
	if end.Before(time.Now()) {
		status = models.StatusAwaitingEvaluation
	}

	in := &models.Internship{
		StudentID:       req.StudentID,
		CompanyID:       companyID,
		TermID:          term.ID,
		Status:          status,
		InternshipOrder: req.InternshipOrder,
		DurationDays:    duration,
		StartDate:       start,
		EndDate:         end,
		IsErasmus:       req.IsErasmus,
	}
	in.CompanyContactName = optionalString(req.CompanyContactName)
	in.CompanyContactPosition = optionalString(req.CompanyContactPosition)
	in.DocumentURL = optionalString(req.DocumentURL)

	id, err := s.internshipRepo.CreateInternship(ctx, in)
	if err != nil {
		return nil, err
	}
	in.ID = id
	return in, nil
}
