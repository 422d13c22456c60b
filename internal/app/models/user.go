package models

import (
	"time"
)

// Role defines a role based on the 'roles' table. Reference data.
type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Department defines a department based on the 'departments' table
type Department struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// User defines the user model based on the 'users' table
type User struct {
	ID                     int64       `json:"id" db:"id" example:"1"`
	Email                  string      `json:"email" db:"email" example:"admin1@example.com"`
	Username               string      `json:"username" db:"username" example:"admin1"`
	Password               string      `json:"-" db:"password"` // hashed, excluded from JSON
	Name                   *string     `json:"name" db:"name"`
	RoleID                 int64       `json:"-" db:"role_id"`
	DepartmentID           *int64      `json:"-" db:"department_id"`
	RequiresPasswordChange bool        `json:"requiresPasswordChange" db:"requires_password_change"`
	CreatedAt              time.Time   `json:"createdAt" db:"created_at"`
	Role                   *Role       `json:"role,omitempty"`       // Relation, no db tag
	Department             *Department `json:"department,omitempty"` // Relation, no db tag
}
