package store

import (
	"context"
	"errors"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, email, first_name, last_name, company_id, created_at, updated_at`

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

func scanUser(row pgx.Row, u *domain.User) error {
	return mapError(row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.CompanyID, &u.CreatedAt, &u.UpdatedAt))
}

func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO users (email, first_name, last_name, company_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING user_id, created_at, updated_at`,
		u.Email, u.FirstName, u.LastName, u.CompanyID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return mapError(err)
}

func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	if err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE user_id = $1`, id), u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	if err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email), u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserStore) ListByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 ORDER BY user_id`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateIfNotExists relies on the unique constraint on users.email so that
// concurrent callers with the same email converge on one row.
func (s *UserStore) CreateIfNotExists(ctx context.Context, u *domain.User) (bool, error) {
	err := scanUser(s.db.QueryRow(ctx,
		`INSERT INTO users (email, first_name, last_name, company_id)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (email) DO NOTHING
		 RETURNING `+userColumns,
		u.Email, u.FirstName, u.LastName, u.CompanyID,
	), u)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	// Conflict: the row already exists.
	if err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, u.Email), u); err != nil {
		return false, err
	}
	return false, nil
}

func (s *UserStore) UpdateNames(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	u := &domain.User{}
	err := scanUser(s.db.QueryRow(ctx,
		`UPDATE users SET
			first_name = COALESCE($2, first_name),
			last_name  = COALESCE($3, last_name),
			updated_at = NOW()
		WHERE user_id = $1
		RETURNING `+userColumns,
		id, upd.FirstName, upd.LastName,
	), u)
	if err != nil {
		return nil, err
	}
	return u, nil
}
