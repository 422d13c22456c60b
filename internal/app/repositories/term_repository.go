package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
	"github.com/oguzk/stajtakip/internal/pkg/dberrors"
)

// TermRepository handles database operations for internship terms
type TermRepository struct {
	db *pgxpool.Pool
}

// NewTermRepository creates a new TermRepository
func NewTermRepository(db *pgxpool.Pool) *TermRepository {
	return &TermRepository{db: db}
}

// GetAllTerms retrieves all terms, most recent first
func (r *TermRepository) GetAllTerms(ctx context.Context) ([]models.Term, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, start_date, end_date
		FROM terms ORDER BY start_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var terms []models.Term
	for rows.Next() {
		var t models.Term
		if err := rows.Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate); err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

// GetTermByID retrieves a term by ID
func (r *TermRepository) GetTermByID(ctx context.Context, id int64) (*models.Term, error) {
	t := &models.Term{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, start_date, end_date FROM terms WHERE id = $1`, id).
		Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTermNotFound
		}
		return nil, err
	}
	return t, nil
}

// CreateTerm inserts a new term and returns its generated ID
func (r *TermRepository) CreateTerm(ctx context.Context, term *models.Term) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO terms (name, start_date, end_date)
		VALUES ($1, $2, $3)
		RETURNING id`,
		term.Name, term.StartDate, term.EndDate,
	).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrTermAlreadyExists
		}
		return 0, err
	}
	return id, nil
}
