package dto

import "github.com/oguzk/stajtakip/internal/app/models"

// CreateCommissionChairRequest is the body of POST /api/create-commission-chair
type CreateCommissionChairRequest struct {
	DepartmentID      int64  `json:"departmentId" binding:"required"`
	FirstName         string `json:"firstName" binding:"required"`
	LastName          string `json:"lastName" binding:"required"`
	Email             string `json:"email" binding:"required,email"`
	TemporaryPassword string `json:"temporaryPassword" binding:"required"`
}

// CreateCommissionChairResponse returns the newly created chair
type CreateCommissionChairResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// AssignCommissionChairRequest is the body of POST /api/assign-commission-chair
type AssignCommissionChairRequest struct {
	UserID       int64 `json:"userId" binding:"required"`
	DepartmentID int64 `json:"departmentId" binding:"required"`
}

// DepartmentChair is the trimmed chair payload of GET /api/department-chair/:departmentId
type DepartmentChair struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
}

// CommissionChairListItem is one row of GET /api/commission-chairs
type CommissionChairListItem struct {
	ID         int64              `json:"id"`
	Username   string             `json:"username"`
	Email      string             `json:"email"`
	Department *models.Department `json:"department"`
}

// CommissionStatusRow summarizes one department's commission. Departments
// with no chair and no members are omitted from the response entirely.
type CommissionStatusRow struct {
	DepartmentName string  `json:"departmentName"`
	ChairName      *string `json:"chairName"`
	Member1        *string `json:"member1"`
	Member2        *string `json:"member2"`
}
