package store

import (
	"context"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `company_id, name, friendly_name, industry_id, estimated_revenue, classification,
	auth0_organization_id, stripe_customer_id, billing_email, address_line1, address_line2,
	city, state, postal_code, country, created_at, updated_at`

type CompanyStore struct {
	db *pgxpool.Pool
}

func NewCompanyStore(db *pgxpool.Pool) *CompanyStore {
	return &CompanyStore{db: db}
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	c := &domain.Company{}
	err := row.Scan(
		&c.ID, &c.Name, &c.FriendlyName, &c.IndustryID, &c.EstimatedRevenue, &c.Classification,
		&c.Auth0OrganizationID, &c.StripeCustomerID, &c.Billing.Email, &c.Billing.AddressLine1, &c.Billing.AddressLine2,
		&c.Billing.City, &c.Billing.State, &c.Billing.PostalCode, &c.Billing.Country, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return c, nil
}

func (s *CompanyStore) Create(ctx context.Context, c *domain.Company) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO companies (
			name, friendly_name, industry_id, estimated_revenue, classification,
			auth0_organization_id, stripe_customer_id, billing_email, address_line1, address_line2,
			city, state, postal_code, country
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING company_id, created_at, updated_at`,
		c.Name, c.FriendlyName, c.IndustryID, c.EstimatedRevenue, c.Classification,
		c.Auth0OrganizationID, c.StripeCustomerID, c.Billing.Email, c.Billing.AddressLine1, c.Billing.AddressLine2,
		c.Billing.City, c.Billing.State, c.Billing.PostalCode, c.Billing.Country,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return mapError(err)
}

func (s *CompanyStore) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	return scanCompany(s.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE company_id = $1`, id))
}

func (s *CompanyStore) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	return scanCompany(s.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE name = $1`, name))
}

func (s *CompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	rows, err := s.db.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY company_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

// UpdateAttrs applies only the non-nil fields of u in a single statement and
// returns the stored row.
func (s *CompanyStore) UpdateAttrs(ctx context.Context, id int64, u domain.CompanyUpdate) (*domain.Company, error) {
	return scanCompany(s.db.QueryRow(ctx,
		`UPDATE companies SET
			friendly_name     = COALESCE($2, friendly_name),
			industry_id       = COALESCE($3, industry_id),
			estimated_revenue = COALESCE($4, estimated_revenue),
			classification    = COALESCE($5, classification),
			updated_at        = NOW()
		WHERE company_id = $1
		RETURNING `+companyColumns,
		id, u.FriendlyName, u.IndustryID, u.EstimatedRevenue, u.Classification,
	))
}
