package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzk/stajtakip/internal/app/models"
	"github.com/oguzk/stajtakip/internal/pkg/apperrors"
)

// CompanyRepository handles database operations for companies
type CompanyRepository struct {
	db *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// GetCompanyByID retrieves a company by ID
func (r *CompanyRepository) GetCompanyByID(ctx context.Context, id int64) (*models.Company, error) {
	c := &models.Company{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, phone, email FROM companies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.Phone, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, err
	}
	return c, nil
}

// GetAllCompanies retrieves all companies ordered by name
func (r *CompanyRepository) GetAllCompanies(ctx context.Context) ([]models.Company, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, phone, email FROM companies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// UpsertCompanyByName inserts a company or refreshes its contact details when
// the name already exists, returning the company ID either way.
func (r *CompanyRepository) UpsertCompanyByName(ctx context.Context, company *models.Company) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO companies (name, phone, email)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE
		SET phone = EXCLUDED.phone,
		    email = EXCLUDED.email
		RETURNING id`,
		company.Name, company.Phone, company.Email,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}
