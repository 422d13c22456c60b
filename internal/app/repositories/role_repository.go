package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

// GetRoleByID retrieves a role by its ID
func (r *RoleRepository) GetRoleByID(ctx context.Context, id int64) (*models.Role, error) {
	role := &models.Role{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM roles WHERE id = $1`, id).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

// GetRoleByName retrieves a role by its unique name
func (r *RoleRepository) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	role := &models.Role{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, name).
		Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}
	return role, nil
}

// GetAllRoles retrieves all roles ordered by ID
func (r *RoleRepository) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}
