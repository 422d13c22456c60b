package services

import (
	"context"
	"errors"
	"testing"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/app/repositories"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/auth"
)

type mockCommissionUserStore struct {
	usersByID      map[int64]*models.User
	chairByDept    map[int64]*models.User
	membership     []repositories.CommissionMemberRow
	replacedDept   int64
	replacedUser   *models.User
	deletedUserIDs []int64
	assigned       map[int64]int64 // userID -> departmentID
}

func newMockCommissionUserStore() *mockCommissionUserStore {
	return &mockCommissionUserStore{
		usersByID:   make(map[int64]*models.User),
		chairByDept: make(map[int64]*models.User),
		assigned:    make(map[int64]int64),
	}
}

func (m *mockCommissionUserStore) GetUsersByRole(_ context.Context, roleID int64) ([]*models.User, error) {
	var users []*models.User
	for _, u := range m.usersByID {
		if u.RoleID == roleID {
			users = append(users, u)
		}
	}
	return users, nil
}

func (m *mockCommissionUserStore) GetUserByDepartmentAndRole(_ context.Context, departmentID, roleID int64) (*models.User, error) {
	if u, ok := m.chairByDept[departmentID]; ok && u.RoleID == roleID {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *mockCommissionUserStore) ReplaceDepartmentChair(_ context.Context, departmentID, chairRoleID int64, user *models.User) (int64, error) {
	m.replacedDept = departmentID
	m.replacedUser = user
	m.chairByDept[departmentID] = user
	return 55, nil
}

func (m *mockCommissionUserStore) UpdateUserDepartment(_ context.Context, userID int64, departmentID int64) error {
	if _, ok := m.usersByID[userID]; !ok {
		return apperrors.ErrUserNotFound
	}
	m.assigned[userID] = departmentID
	return nil
}

func (m *mockCommissionUserStore) DeleteUser(_ context.Context, id int64) error {
	if _, ok := m.usersByID[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	m.deletedUserIDs = append(m.deletedUserIDs, id)
	return nil
}

func (m *mockCommissionUserStore) GetCommissionMembership(_ context.Context, chairRoleID, memberRoleID int64) ([]repositories.CommissionMemberRow, error) {
	return m.membership, nil
}

type mockDepartmentStore struct {
	departments map[int64]*models.Department
}

func newMockDepartmentStore() *mockDepartmentStore {
	return &mockDepartmentStore{departments: map[int64]*models.Department{
		1: {ID: 1, Name: "Computer Engineering"},
		2: {ID: 2, Name: "Electrical Engineering"},
	}}
}

func (m *mockDepartmentStore) GetAllDepartments(_ context.Context) ([]models.Department, error) {
	var out []models.Department
	for _, d := range m.departments {
		out = append(out, *d)
	}
	return out, nil
}

func (m *mockDepartmentStore) GetDepartmentByID(_ context.Context, id int64) (*models.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func strptr(s string) *string { return &s }

func TestCreateChair(t *testing.T) {
	users := newMockCommissionUserStore()
	service := NewCommissionService(users, newMockRoleStore(), newMockDepartmentStore())

	chair, err := service.CreateChair(context.Background(), &dto.CreateCommissionChairRequest{
		DepartmentID:      1,
		FirstName:         "Ayse",
		LastName:          "Demir",
		Email:             " ayse.demir@example.com ",
		TemporaryPassword: "gecici123",
	})
	if err != nil {
		t.Fatalf("CreateChair failed: %v", err)
	}

	if chair.Username != "ayse.demir" {
		t.Errorf("username should be first.last lower-cased, got %q", chair.Username)
	}
	if chair.Name == nil || *chair.Name != "Ayse Demir" {
		t.Errorf("unexpected name: %v", chair.Name)
	}
	if chair.Email != "ayse.demir@example.com" {
		t.Errorf("email should be trimmed, got %q", chair.Email)
	}
	if !chair.RequiresPasswordChange {
		t.Error("temporary password must force a change on first login")
	}
	if chair.ID != 55 {
		t.Errorf("expected the id assigned by the store, got %d", chair.ID)
	}
	if chair.Password != "" {
		t.Error("returned chair must not carry the password hash")
	}

	if users.replacedDept != 1 {
		t.Errorf("replacement should target department 1, got %d", users.replacedDept)
	}
	if users.replacedUser == nil || !auth.CheckPassword(users.replacedUser.Password, "gecici123") {
		t.Error("stored chair must carry a bcrypt hash of the temporary password")
	}
}

func TestCreateChairUnknownDepartment(t *testing.T) {
	service := NewCommissionService(newMockCommissionUserStore(), newMockRoleStore(), newMockDepartmentStore())

	_, err := service.CreateChair(context.Background(), &dto.CreateCommissionChairRequest{
		DepartmentID:      99,
		FirstName:         "A",
		LastName:          "B",
		Email:             "a@example.com",
		TemporaryPassword: "x",
	})
	if !errors.Is(err, apperrors.ErrDepartmentNotFound) {
		t.Errorf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestRemoveChair(t *testing.T) {
	users := newMockCommissionUserStore()
	users.usersByID[10] = &models.User{ID: 10, RoleID: 2, Role: &models.Role{ID: 2, Name: models.RoleCommissionChair}}
	users.usersByID[11] = &models.User{ID: 11, RoleID: 1, Role: &models.Role{ID: 1, Name: models.RoleGeneralAdmin}}
	service := NewCommissionService(users, newMockRoleStore(), newMockDepartmentStore())

	if err := service.RemoveChair(context.Background(), 10); err != nil {
		t.Fatalf("RemoveChair failed: %v", err)
	}

	// The role is not inspected; any existing user is removed.
	if err := service.RemoveChair(context.Background(), 11); err != nil {
		t.Fatalf("RemoveChair on a non-chair account failed: %v", err)
	}
	if len(users.deletedUserIDs) != 2 || users.deletedUserIDs[0] != 10 || users.deletedUserIDs[1] != 11 {
		t.Errorf("expected users 10 and 11 deleted, got %v", users.deletedUserIDs)
	}

	if err := service.RemoveChair(context.Background(), 99); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound for unknown user, got %v", err)
	}
}

func TestGetDepartmentChairNone(t *testing.T) {
	service := NewCommissionService(newMockCommissionUserStore(), newMockRoleStore(), newMockDepartmentStore())

	chair, err := service.GetDepartmentChair(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetDepartmentChair failed: %v", err)
	}
	if chair != nil {
		t.Errorf("department without chair should yield nil, got %+v", chair)
	}
}

func TestCommissionStatus(t *testing.T) {
	users := newMockCommissionUserStore()
	users.membership = []repositories.CommissionMemberRow{
		{DepartmentID: 1, DepartmentName: "Computer Engineering", UserName: strptr("Chair One"), RoleName: models.RoleCommissionChair},
		{DepartmentID: 1, DepartmentName: "Computer Engineering", UserName: strptr("Member A"), RoleName: models.RoleCommissionMember},
		{DepartmentID: 1, DepartmentName: "Computer Engineering", UserName: strptr("Member B"), RoleName: models.RoleCommissionMember},
		{DepartmentID: 1, DepartmentName: "Computer Engineering", UserName: strptr("Member C"), RoleName: models.RoleCommissionMember},
		{DepartmentID: 2, DepartmentName: "Electrical Engineering", UserName: nil, RoleName: ""},
		{DepartmentID: 3, DepartmentName: "Mechanical Engineering", UserName: strptr("Member Only"), RoleName: models.RoleCommissionMember},
	}
	service := NewCommissionService(users, newMockRoleStore(), newMockDepartmentStore())

	rows, err := service.CommissionStatus(context.Background())
	if err != nil {
		t.Fatalf("CommissionStatus failed: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, departments without commission presence are omitted; got %d", len(rows))
	}

	first := rows[0]
	if first.DepartmentName != "Computer Engineering" {
		t.Errorf("unexpected department: %s", first.DepartmentName)
	}
	if first.ChairName == nil || *first.ChairName != "Chair One" {
		t.Errorf("unexpected chair: %v", first.ChairName)
	}
	if first.Member1 == nil || *first.Member1 != "Member A" || first.Member2 == nil || *first.Member2 != "Member B" {
		t.Errorf("expected first two members only, got %v and %v", first.Member1, first.Member2)
	}

	second := rows[1]
	if second.DepartmentName != "Mechanical Engineering" {
		t.Errorf("unexpected department: %s", second.DepartmentName)
	}
	if second.ChairName != nil {
		t.Errorf("chairless department should have nil chair, got %v", second.ChairName)
	}
	if second.Member1 == nil || *second.Member1 != "Member Only" {
		t.Errorf("unexpected member: %v", second.Member1)
	}
}

func TestAssignChair(t *testing.T) {
	users := newMockCommissionUserStore()
	users.usersByID[20] = &models.User{ID: 20, RoleID: 3}
	service := NewCommissionService(users, newMockRoleStore(), newMockDepartmentStore())

	if err := service.AssignChair(context.Background(), 20, 2); err != nil {
		t.Fatalf("AssignChair failed: %v", err)
	}
	got, ok := users.assigned[20]
	if !ok || got != 2 {
		t.Errorf("expected assignment to department 2, got %v", got)
	}
	// Only the department moves; the user keeps its role.
	if users.usersByID[20].RoleID != 3 {
		t.Errorf("role must not change, got %d", users.usersByID[20].RoleID)
	}

	if err := service.AssignChair(context.Background(), 99, 2); !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
