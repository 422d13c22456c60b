package models

import "time"

// Internship defines an internship record based on the 'internships' table.
// (student_id, internship_order) is unique: a student has at most one STAJ1
// and one STAJ2 record.
type Internship struct {
	ID                     int64            `json:"id" db:"id"`
	StudentID              string           `json:"studentId" db:"student_id"`
	CompanyID              int64            `json:"companyId" db:"company_id"`
	TermID                 int64            `json:"termId" db:"term_id"`
	Status                 InternshipStatus `json:"status" db:"status"`
	InternshipOrder        InternshipOrder  `json:"internshipOrder" db:"internship_order"`
	DurationDays           int              `json:"durationDays" db:"duration_days"`
	StartDate              time.Time        `json:"startDate" db:"start_date"`
	EndDate                time.Time        `json:"endDate" db:"end_date"`
	Grade                  *string          `json:"grade" db:"grade"` // 'S', 'U' or null
	GradeComment           *string          `json:"gradeComment,omitempty" db:"grade_comment"`
	ReportURL              *string          `json:"reportUrl,omitempty" db:"report_url"`
	DocumentURL            *string          `json:"documentUrl,omitempty" db:"document_url"`
	CompanyContactName     *string          `json:"companyContactName,omitempty" db:"company_contact_name"`
	CompanyContactPosition *string          `json:"companyContactPosition,omitempty" db:"company_contact_position"`
	IsErasmus              bool             `json:"isErasmus" db:"is_erasmus"`
	Company                *Company         `json:"company,omitempty"` // Relation, no db tag
	Term                   *Term            `json:"term,omitempty"`    // Relation, no db tag
}
