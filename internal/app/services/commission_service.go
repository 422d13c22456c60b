package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/app/repositories"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/auth"
	"github.com/oguzk/stajtakip/internal/pkg/logger"
)

// commissionUserStore is the slice of the user repository the commission
// service needs.
type commissionUserStore interface {
	GetUsersByRole(ctx context.Context, roleID int64) ([]*models.User, error)
	GetUserByDepartmentAndRole(ctx context.Context, departmentID int64, roleID int64) (*models.User, error)
	ReplaceDepartmentChair(ctx context.Context, departmentID int64, chairRoleID int64, user *models.User) (int64, error)
	UpdateUserDepartment(ctx context.Context, userID int64, departmentID int64) error
	DeleteUser(ctx context.Context, id int64) error
	GetCommissionMembership(ctx context.Context, chairRoleID, memberRoleID int64) ([]repositories.CommissionMemberRow, error)
}

type departmentStore interface {
	GetAllDepartments(ctx context.Context) ([]models.Department, error)
	GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error)
}

// CommissionService manages commission chairs and membership per department
type CommissionService struct {
	userRepo       commissionUserStore
	roleRepo       authRoleStore
	departmentRepo departmentStore
}

// NewCommissionService creates a new commission service instance
func NewCommissionService(userRepo commissionUserStore, roleRepo authRoleStore, departmentRepo departmentStore) *CommissionService {
	return &CommissionService{
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		departmentRepo: departmentRepo,
	}
}

// ListDepartments returns all departments
func (s *CommissionService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.departmentRepo.GetAllDepartments(ctx)
}

// GetDepartmentChair returns the commission chair of a department, or nil
// when the department has none.
func (s *CommissionService) GetDepartmentChair(ctx context.Context, departmentID int64) (*dto.DepartmentChair, error) {
	role, err := s.roleRepo.GetRoleByName(ctx, models.RoleCommissionChair)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByDepartmentAndRole(ctx, departmentID, role.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dto.DepartmentChair{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// CreateChair creates a commission chair account for a department with a
// temporary password. Any existing chair of the department is replaced in
// the same transaction.
func (s *CommissionService) CreateChair(ctx context.Context, req *dto.CreateCommissionChairRequest) (*models.User, error) {
	role, err := s.roleRepo.GetRoleByName(ctx, models.RoleCommissionChair)
	if err != nil {
		return nil, err
	}

	department, err := s.departmentRepo.GetDepartmentByID(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.TemporaryPassword)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s %s", req.FirstName, req.LastName)
	username := strings.ToLower(fmt.Sprintf("%s.%s", req.FirstName, req.LastName))
	user := &models.User{
		Email:                  strings.TrimSpace(req.Email),
		Username:               username,
		Password:               hash,
		Name:                   &name,
		RoleID:                 role.ID,
		DepartmentID:           &department.ID,
		RequiresPasswordChange: true,
	}

	id, err := s.userRepo.ReplaceDepartmentChair(ctx, department.ID, role.ID, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	user.Role = role
	user.Department = department
	user.Password = ""

	logger.Info().
		Int64("userId", id).
		Str("department", department.Name).
		Msg("Commission chair created")
	return user, nil
}

// RemoveChair deletes a commission chair account by user ID. The role is
// not checked; whatever user the ID points at is removed.
func (s *CommissionService) RemoveChair(ctx context.Context, userID int64) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

// ListChairs returns every commission chair with its department
func (s *CommissionService) ListChairs(ctx context.Context) ([]dto.CommissionChairListItem, error) {
	role, err := s.roleRepo.GetRoleByName(ctx, models.RoleCommissionChair)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetUsersByRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommissionChairListItem, 0, len(users))
	for _, u := range users {
		items = append(items, dto.CommissionChairListItem{
			ID:         u.ID,
			Username:   u.Username,
			Email:      u.Email,
			Department: u.Department,
		})
	}
	return items, nil
}

// AssignChair moves an existing user into a department. Only the department
// changes; the user keeps the role it already holds.
func (s *CommissionService) AssignChair(ctx context.Context, userID, departmentID int64) error {
	return s.userRepo.UpdateUserDepartment(ctx, userID, departmentID)
}

// CommissionStatus summarizes each department's commission: the chair and
// the first two members by assignment time. Departments without any chair
// or member are left out.
func (s *CommissionService) CommissionStatus(ctx context.Context) ([]dto.CommissionStatusRow, error) {
	chairRole, err := s.roleRepo.GetRoleByName(ctx, models.RoleCommissionChair)
	if err != nil {
		return nil, err
	}
	memberRole, err := s.roleRepo.GetRoleByName(ctx, models.RoleCommissionMember)
	if err != nil {
		return nil, err
	}

	rows, err := s.userRepo.GetCommissionMembership(ctx, chairRole.ID, memberRole.ID)
	if err != nil {
		return nil, err
	}

	var result []dto.CommissionStatusRow
	var current *dto.CommissionStatusRow
	var currentDept int64
	memberCount := 0

	flush := func() {
		if current != nil && (current.ChairName != nil || current.Member1 != nil) {
			result = append(result, *current)
		}
		current = nil
	}

	for _, row := range rows {
		if current == nil || row.DepartmentID != currentDept {
			flush()
			current = &dto.CommissionStatusRow{DepartmentName: row.DepartmentName}
			currentDept = row.DepartmentID
			memberCount = 0
		}
		if row.UserName == nil {
			continue
		}
		switch row.RoleName {
		case models.RoleCommissionChair:
			current.ChairName = row.UserName
		case models.RoleCommissionMember:
			memberCount++
			switch memberCount {
			case 1:
				current.Member1 = row.UserName
			case 2:
				current.Member2 = row.UserName
			}
		}
	}
	flush()

	return result, nil
}
