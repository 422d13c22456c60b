package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/dberrors"
)

// InternshipRepository handles database operations for internships
type InternshipRepository struct {
	db *pgxpool.Pool
}

// NewInternshipRepository creates a new InternshipRepository
func NewInternshipRepository(db *pgxpool.Pool) *InternshipRepository {
	return &InternshipRepository{db: db}
}

const internshipSelectBase = `
	SELECT i.id, i.student_id, i.company_id, i.term_id, i.status, i.internship_order,
	       i.duration_days, i.start_date, i.end_date, i.grade, i.grade_comment,
	       i.report_url, i.document_url, i.company_contact_name, i.company_contact_position,
	       i.is_erasmus,
	       c.id, c.name, c.phone, c.email
	FROM internships i
	JOIN companies c ON c.id = i.company_id`

func scanInternshipRow(row pgx.Row) (*models.Internship, error) {
	in := &models.Internship{Company: &models.Company{}}
	err := row.Scan(
		&in.ID, &in.StudentID, &in.CompanyID, &in.TermID, &in.Status, &in.InternshipOrder,
		&in.DurationDays, &in.StartDate, &in.EndDate, &in.Grade, &in.GradeComment,
		&in.ReportURL, &in.DocumentURL, &in.CompanyContactName, &in.CompanyContactPosition,
		&in.IsErasmus,
		&in.Company.ID, &in.Company.Name, &in.Company.Phone, &in.Company.Email,
	)
	if err != nil {
		return nil, err
	}
	return in, nil
}

func (r *InternshipRepository) queryInternships(ctx context.Context, query string, args ...any) ([]*models.Internship, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var internships []*models.Internship
	for rows.Next() {
		in, err := scanInternshipRow(rows)
		if err != nil {
			return nil, err
		}
		internships = append(internships, in)
	}
	return internships, rows.Err()
}

// GetInternshipsByDepartmentAndTerm retrieves the internships of a
// department's students within a term, with company relations loaded.
func (r *InternshipRepository) GetInternshipsByDepartmentAndTerm(ctx context.Context, departmentID, termID int64) ([]*models.Internship, error) {
	return r.queryInternships(ctx, internshipSelectBase+`
		JOIN students s ON s.id = i.student_id
		WHERE s.department_id = $1 AND i.term_id = $2
		ORDER BY i.student_id, i.internship_order`,
		departmentID, termID)
}

// GetInternshipsByStudentIDs retrieves every internship of the given
// students regardless of term, with company relations loaded.
func (r *InternshipRepository) GetInternshipsByStudentIDs(ctx context.Context, studentIDs []string) ([]*models.Internship, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}
	return r.queryInternships(ctx, internshipSelectBase+`
		WHERE i.student_id = ANY($1)
		ORDER BY i.student_id, i.internship_order`,
		studentIDs)
}

// GetInternshipsByStudentID retrieves all internships of one student
func (r *InternshipRepository) GetInternshipsByStudentID(ctx context.Context, studentID string) ([]*models.Internship, error) {
	return r.queryInternships(ctx, internshipSelectBase+`
		WHERE i.student_id = $1
		ORDER BY i.internship_order`,
		studentID)
}

// CreateInternship inserts a new internship and returns its generated ID.
// A student can hold only one record per internship order.
func (r *InternshipRepository) CreateInternship(ctx context.Context, in *models.Internship) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO internships (student_id, company_id, term_id, status, internship_order,
		                         duration_days, start_date, end_date, grade, grade_comment,
		                         report_url, document_url, company_contact_name,
		                         company_contact_position, is_erasmus)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		in.StudentID, in.CompanyID, in.TermID, in.Status, in.InternshipOrder,
		in.DurationDays, in.StartDate, in.EndDate, in.Grade, in.GradeComment,
		in.ReportURL, in.DocumentURL, in.CompanyContactName,
		in.CompanyContactPosition, in.IsErasmus,
	).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "internships_student_id_internship_order_key") {
			return 0, apperrors.ErrInternshipAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		return 0, err
	}
	return id, nil
}

// UpdateGrade stores an evaluation result on a student's internship,
// identified by student number and internship order. Grading marks the
// record completed.
func (r *InternshipRepository) UpdateGrade(ctx context.Context, studentID string, order models.InternshipOrder, grade string, comment *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE internships
		SET grade = $1, grade_comment = $2, status = $3
		WHERE student_id = $4 AND internship_order = $5`,
		grade, comment, models.StatusCompleted, studentID, order)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInternshipNotFound
	}
	return nil
}
