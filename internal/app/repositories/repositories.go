package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	RoleRepository       *RoleRepository
	UserRepository       *UserRepository
	DepartmentRepository *DepartmentRepository
	StudentRepository    *StudentRepository
	TermRepository       *TermRepository
	CompanyRepository    *CompanyRepository
	InternshipRepository *InternshipRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		RoleRepository:       NewRoleRepository(db),
		UserRepository:       NewUserRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		StudentRepository:    NewStudentRepository(db),
		TermRepository:       NewTermRepository(db),
		CompanyRepository:    NewCompanyRepository(db),
		InternshipRepository: NewInternshipRepository(db),
	}
}
