package store

import (
	"context"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IndustryStore reads the company_industries catalog. The catalog is seeded by
// migrations and never written by the service.
type IndustryStore struct {
	db *pgxpool.Pool
}

func NewIndustryStore(db *pgxpool.Pool) *IndustryStore {
	return &IndustryStore{db: db}
}

func (s *IndustryStore) List(ctx context.Context) ([]domain.CompanyIndustry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT industry_id, industry_name, category_name, category_description, description
		 FROM company_industries ORDER BY category_name, industry_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	industries := []domain.CompanyIndustry{}
	for rows.Next() {
		var i domain.CompanyIndustry
		if err := rows.Scan(&i.ID, &i.Name, &i.CategoryName, &i.CategoryDescription, &i.Description); err != nil {
			return nil, err
		}
		industries = append(industries, i)
	}
	return industries, rows.Err()
}

func (s *IndustryStore) GetByID(ctx context.Context, id int64) (*domain.CompanyIndustry, error) {
	i := &domain.CompanyIndustry{}
	err := s.db.QueryRow(ctx,
		`SELECT industry_id, industry_name, category_name, category_description, description
		 FROM company_industries WHERE industry_id = $1`, id,
	).Scan(&i.ID, &i.Name, &i.CategoryName, &i.CategoryDescription, &i.Description)
	if err != nil {
		return nil, mapError(err)
	}
	return i, nil
}
