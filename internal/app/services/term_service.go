package services

import (
	"context"
	"time"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/app/models/dto"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
)

type termStore interface {
	GetAllTerms(ctx context.Context) ([]models.Term, error)
	GetTermByID(ctx context.Context, id int64) (*models.Term, error)
	CreateTerm(ctx context.Context, term *models.Term) (int64, error)
}

// TermService manages internship terms
type TermService struct {
	termRepo termStore
}

// NewTermService creates a new term service instance
func NewTermService(termRepo termStore) *TermService {
	return &TermService{termRepo: termRepo}
}

// ListTerms returns all terms, most recent first
func (s *TermService) ListTerms(ctx context.Context) ([]models.Term, error) {
	return s.termRepo.GetAllTerms(ctx)
}

// CreateTerm creates a new internship term. Dates arrive as ISO YYYY-MM-DD.
func (s *TermService) CreateTerm(ctx context.Context, req *dto.CreateTermRequest) (*models.Term, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid start date")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("invalid end date")
	}
	if !end.After(start) {
		return nil, apperrors.NewBadRequestError("end date must be after start date")
	}

	term := &models.Term{Name: req.Name, StartDate: start, EndDate: end}
	id, err := s.termRepo.CreateTerm(ctx, term)
	if err != nil {
		return nil, err
	}
	term.ID = id
	return term, nil
}
