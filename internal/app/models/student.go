package models

// Student defines the student model based on the 'students' table.
// The primary key is the external student number, not a generated id.
type Student struct {
	ID           string      `json:"id" db:"id" example:"220104004001"`
	Name         string      `json:"name" db:"name"`
	Email        string      `json:"email" db:"email"`
	PhoneNumber  string      `json:"phone_number" db:"phone_number"`
	DepartmentID int64       `json:"departmentId" db:"department_id"`
	Department   *Department `json:"department,omitempty"`
}
