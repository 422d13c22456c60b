package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/db"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userSelectBase = `
	SELECT u.id, u.email, u.username, u.password, u.name, u.role_id, u.department_id,
	       u.requires_password_change, u.created_at,
	       r.id, r.name,
	       d.id, d.name
	FROM users u
	JOIN roles r ON r.id = u.role_id
	LEFT JOIN departments d ON d.id = u.department_id`

// scanUserRow scans one row of a userSelectBase query into a User with relations.
func scanUserRow(row pgx.Row) (*models.User, error) {
	user := &models.User{Role: &models.Role{}}
	var deptID *int64
	var deptName *string
	err := row.Scan(
		&user.ID, &user.Email, &user.Username, &user.Password, &user.Name,
		&user.RoleID, &user.DepartmentID, &user.RequiresPasswordChange, &user.CreatedAt,
		&user.Role.ID, &user.Role.Name,
		&deptID, &deptName,
	)
	if err != nil {
		return nil, err
	}
	if deptID != nil {
		user.Department = &models.Department{ID: *deptID, Name: *deptName}
	}
	return user, nil
}

// GetUserByEmail retrieves a user with role and department by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := scanUserRow(r.db.QueryRow(ctx, userSelectBase+` WHERE u.email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetAllUsers retrieves all users with their role and department relations
func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, userSelectBase+` ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user and returns its generated ID
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, username, password, name, role_id, department_id, requires_password_change)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		user.Email, user.Username, user.Password, user.Name,
		user.RoleID, user.DepartmentID, user.RequiresPasswordChange,
	).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, err
	}
	return id, nil
}

// CreateUserTx inserts a new user inside an existing transaction
func (r *UserRepository) CreateUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO users (email, username, password, name, role_id, department_id, requires_password_change)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		user.Email, user.Username, user.Password, user.Name,
		user.RoleID, user.DepartmentID, user.RequiresPasswordChange,
	).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, err
	}
	return id, nil
}

// UpdatePassword replaces a user's password hash, looked up by email
func (r *UserRepository) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password = $1 WHERE email = $2`, passwordHash, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpdatePasswordByID replaces a user's password hash and clears the forced-change flag
func (r *UserRepository) UpdatePasswordByID(ctx context.Context, userID int64, passwordHash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password = $1, requires_password_change = FALSE WHERE id = $2`,
		passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user by ID
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUsersByDepartmentAndRoleTx removes all users of a role within a
// department, inside an existing transaction. Returns the number of rows
// removed; zero is not an error.
func (r *UserRepository) DeleteUsersByDepartmentAndRoleTx(ctx context.Context, tx pgx.Tx, departmentID int64, roleID int64) (int64, error) {
	tag, err := tx.Exec(ctx,
		`DELETE FROM users WHERE department_id = $1 AND role_id = $2`, departmentID, roleID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ReplaceDepartmentChair removes every existing chair of a department and
// inserts the new chair, atomically. A failure in either step leaves the
// previous chair in place.
func (r *UserRepository) ReplaceDepartmentChair(ctx context.Context, departmentID int64, chairRoleID int64, user *models.User) (int64, error) {
	var id int64
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := r.DeleteUsersByDepartmentAndRoleTx(ctx, tx, departmentID, chairRoleID); err != nil {
			return err
		}
		newID, err := r.CreateUserTx(ctx, tx, user)
		if err != nil {
			return err
		}
		id = newID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateUserDepartment moves a user into a department
func (r *UserRepository) UpdateUserDepartment(ctx context.Context, userID int64, departmentID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET department_id = $1 WHERE id = $2`, departmentID, userID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// GetUsersByRole retrieves all users holding the given role, with relations
func (r *UserRepository) GetUsersByRole(ctx context.Context, roleID int64) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, userSelectBase+` WHERE u.role_id = $1 ORDER BY u.id`, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUserByDepartmentAndRole retrieves the first user matching a department
// and role, or ErrUserNotFound when the department has none.
func (r *UserRepository) GetUserByDepartmentAndRole(ctx context.Context, departmentID int64, roleID int64) (*models.User, error) {
	user, err := scanUserRow(r.db.QueryRow(ctx,
		userSelectBase+` WHERE u.department_id = $1 AND u.role_id = $2 ORDER BY u.created_at LIMIT 1`,
		departmentID, roleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CommissionMemberRow is a flat row of the commission membership query.
type CommissionMemberRow struct {
	DepartmentID   int64
	DepartmentName string
	UserName       *string
	RoleName       string
}

// GetCommissionMembership lists every department together with its commission
// chair and members, ordered so that the chair comes first and members follow
// in assignment order. Departments without any commission user still produce
// rows with NULL user columns.
func (r *UserRepository) GetCommissionMembership(ctx context.Context, chairRoleID, memberRoleID int64) ([]CommissionMemberRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.name, u.name, r.name
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id AND u.role_id IN ($1, $2)
		LEFT JOIN roles r ON r.id = u.role_id
		ORDER BY d.id, CASE WHEN u.role_id = $1 THEN 0 ELSE 1 END, u.created_at`,
		chairRoleID, memberRoleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CommissionMemberRow
	for rows.Next() {
		var row CommissionMemberRow
		var roleName *string
		if err := rows.Scan(&row.DepartmentID, &row.DepartmentName, &row.UserName, &roleName); err != nil {
			return nil, err
		}
		if roleName != nil {
			row.RoleName = *roleName
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
