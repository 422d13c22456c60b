package dto

import "github.com/oguzk/stajtakip/internal/app/models"

// InternshipSummary is the per-slot internship payload embedded in a
// student summary row.
type InternshipSummary struct {
	ID              int64                   `json:"id"`
	InternshipOrder models.InternshipOrder  `json:"internshipOrder"`
	Status          models.InternshipStatus `json:"status"`
	CompanyName     string                  `json:"company"`
	StartDate       string                  `json:"startDate"` // ISO YYYY-MM-DD
	EndDate         string                  `json:"endDate"`   // ISO YYYY-MM-DD
	DurationDays    int                     `json:"durationDays"`
	Grade           *string                 `json:"grade"`
	GradeComment    *string                 `json:"gradeComment"`
	IsErasmus       bool                    `json:"isErasmus"`
}

// StudentSummary is one row of GET /api/students/:departmentId/:termId.
// The id is the student number; studentNumber repeats it for older clients.
type StudentSummary struct {
	ID                 string             `json:"id"`
	StudentNumber      string             `json:"studentNumber"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	PhoneNumber        string             `json:"phoneNumber"`
	CurrentInternship  *InternshipSummary `json:"currentInternship"`
	PreviousInternship *InternshipSummary `json:"previousInternship"`
}

// BulkGradeEntry is one grading instruction, keyed by the
// (studentId, internshipOrder) unique pair.
type BulkGradeEntry struct {
	StudentID       string                 `json:"studentId" binding:"required"`
	InternshipOrder models.InternshipOrder `json:"internshipOrder" binding:"required"`
	Grade           string                 `json:"grade" binding:"required"`
	GradeComment    string                 `json:"gradeComment"`
}

// BulkGradeRequest is the body of POST /api/grade-internships-bulk
type BulkGradeRequest struct {
	Grades []BulkGradeEntry `json:"grades" binding:"required"`
}

// BulkGradeResult reports the outcome of a single entry
type BulkGradeResult struct {
	StudentID       string                 `json:"studentId"`
	InternshipOrder models.InternshipOrder `json:"internshipOrder"`
	Success         bool                   `json:"success"`
	Error           string                 `json:"error,omitempty"`
}

// BulkGradeResponse is the body returned by the bulk grading endpoint.
// Partial failure is expected; failed entries never abort the batch.
type BulkGradeResponse struct {
	SuccessCount int               `json:"successCount"`
	FailureCount int               `json:"failureCount"`
	Results      []BulkGradeResult `json:"results"`
}

// GenerateReportRequest is the body of POST /api/internship/generate-report.
// StudentIDs, when present, restricts the report to those student numbers.
type GenerateReportRequest struct {
	TermID            int64    `json:"termId" binding:"required"`
	DepartmentID      int64    `json:"departmentId" binding:"required"`
	GradeFilter       *string  `json:"gradeFilter"`
	StudentTypeFilter *string  `json:"studentTypeFilter"`
	StudentIDs        []string `json:"studentIds"`
}

// CreateTermRequest is the body of POST /api/terms
type CreateTermRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

// CreateInternshipRequest is the body of POST /api/internship.
// Used both for manual chair entry and for confirming parsed document data.
type CreateInternshipRequest struct {
	StudentID              string                 `json:"studentId" binding:"required"`
	StudentName            string                 `json:"studentName"`
	StudentEmail           string                 `json:"studentEmail"`
	StudentPhone           string                 `json:"studentPhone"`
	DepartmentID           int64                  `json:"departmentId" binding:"required"`
	TermID                 int64                  `json:"termId" binding:"required"`
	InternshipOrder        models.InternshipOrder `json:"internshipOrder" binding:"required"`
	CompanyName            string                 `json:"companyName" binding:"required"`
	CompanyPhone           string                 `json:"companyPhone"`
	CompanyEmail           string                 `json:"companyEmail"`
	CompanyContactName     string                 `json:"companyContactName"`
	CompanyContactPosition string                 `json:"companyContactPosition"`
	StartDate              string                 `json:"startDate" binding:"required"` // ISO YYYY-MM-DD
	EndDate                string                 `json:"endDate" binding:"required"`   // ISO YYYY-MM-DD
	DurationDays           int                    `json:"durationDays"`
	DocumentURL            string                 `json:"documentUrl"`
	IsErasmus              bool                   `json:"isErasmus"`
}

// ParsedStudentInfo carries student identity fields extracted from an
// uploaded internship form.
type ParsedStudentInfo struct {
	Name          string `json:"name"`
	StudentNumber string `json:"studentNumber"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsErasmus     bool   `json:"isErasmus"`
}

// ParsedInternshipInfo carries internship fields extracted from an uploaded
// form. Dates are normalized to ISO YYYY-MM-DD.
type ParsedInternshipInfo struct {
	Type         string `json:"type"` // "Zorunlu Staj 1" / "Zorunlu Staj 2"
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	DurationDays int    `json:"durationDays"`
	CompanyName  string `json:"companyName"`
	CompanyPhone string `json:"companyPhone"`
	CompanyEmail string `json:"companyEmail"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
}

// ParsePDFResponse is the body returned by POST /api/internship/parse-pdf
type ParsePDFResponse struct {
	StudentInfo    ParsedStudentInfo    `json:"studentInfo"`
	InternshipInfo ParsedInternshipInfo `json:"internshipInfo"`
	DocumentURL    string               `json:"documentUrl"`
}
