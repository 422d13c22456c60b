package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// GetStudentByID retrieves a student by student number
func (r *StudentRepository) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	s := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone_number, department_id
		FROM students WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Email, &s.PhoneNumber, &s.DepartmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, err
	}
	return s, nil
}

// GetStudentsByDepartment retrieves all students of a department ordered by number
func (r *StudentRepository) GetStudentsByDepartment(ctx context.Context, departmentID int64) ([]models.Student, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, phone_number, department_id
		FROM students WHERE department_id = $1 ORDER BY id`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.PhoneNumber, &s.DepartmentID); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// UpsertStudent inserts a student or refreshes its contact details when the
// student number already exists.
func (r *StudentRepository) UpsertStudent(ctx context.Context, s *models.Student) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO students (id, name, email, phone_number, department_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    phone_number = EXCLUDED.phone_number`,
		s.ID, s.Name, s.Email, s.PhoneNumber, s.DepartmentID)
	return err
}
