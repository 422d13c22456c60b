package services

import (
	"github.com/oguzk/stajtakip/internal/app/repositories"
	"github.com/oguzk/stajtakip/internal/pkg/auth"
	"github.com/oguzk/stajtakip/internal/pkg/docparse"
	"github.com/oguzk/stajtakip/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	CommissionService *CommissionService
	TermService       *TermService
	InternshipService *InternshipService
	ReportService     *ReportService
	DocumentService   *DocumentService
}

// NewServices wires all services to their repositories and shared components
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, storage filestorage.FileStorage, extractor docparse.TextExtractor) *Services {
	internshipService := NewInternshipService(
		repos.InternshipRepository,
		repos.StudentRepository,
		repos.CompanyRepository,
		repos.TermRepository,
		repos.DepartmentRepository,
	)

	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.RoleRepository, jwtService),
		CommissionService: NewCommissionService(repos.UserRepository, repos.RoleRepository, repos.DepartmentRepository),
		TermService:       NewTermService(repos.TermRepository),
		InternshipService: internshipService,
		ReportService:     NewReportService(internshipService, repos.TermRepository, repos.DepartmentRepository),
		DocumentService:   NewDocumentService(storage, extractor),
	}
}
