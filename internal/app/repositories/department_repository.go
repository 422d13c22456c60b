package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// GetAllDepartments retrieves all departments ordered by name
func (r *DepartmentRepository) GetAllDepartments(ctx context.Context) ([]models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []models.Department
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// GetDepartmentByID retrieves a department by ID
func (r *DepartmentRepository) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	d := &models.Department{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM departments WHERE id = $1`, id).
		Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return d, nil
}

// GetDepartmentByName retrieves a department by its unique name
func (r *DepartmentRepository) GetDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	d := &models.Department{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM departments WHERE name = $1`, name).
		Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return d, nil
}
