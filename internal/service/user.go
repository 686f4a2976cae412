package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/Harshitk-cp/tenancy/internal/store"
	"go.uber.org/zap"
)

type UserService struct {
	users  domain.UserStore
	logger *zap.Logger
}

func NewUserService(us domain.UserStore, logger *zap.Logger) *UserService {
	return &UserService{users: us, logger: logger}
}

func validateUser(u *domain.User) error {
	u.Email = strings.TrimSpace(u.Email)
	if u.Email == "" {
		return invalid("email", "is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return invalid("email", "is not a valid email address")
	}
	if u.CompanyID <= 0 {
		return invalid("company_id", "must be greater than 0")
	}
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) ListByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	return s.users.ListByCompany(ctx, companyID)
}

func (s *UserService) Create(ctx context.Context, u *domain.User) error {
	if err := validateUser(u); err != nil {
		return err
	}
	if err := s.users.Create(ctx, u); err != nil {
		return translateUserWriteError(err)
	}
	return nil
}

// CreateIfNotExists returns the stored user for u.Email, inserting u when no
// such user exists. The boolean reports whether a row was inserted.
func (s *UserService) CreateIfNotExists(ctx context.Context, u *domain.User) (bool, error) {
	if err := validateUser(u); err != nil {
		return false, err
	}
	created, err := s.users.CreateIfNotExists(ctx, u)
	if err != nil {
		return false, translateUserWriteError(err)
	}
	if created {
		s.logger.Info("created user", zap.Int64("user_id", u.ID), zap.Int64("company_id", u.CompanyID))
	}
	return created, nil
}

func (s *UserService) UpdateNames(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	if upd.Empty() {
		return s.GetByID(ctx, id)
	}
	u, err := s.users.UpdateNames(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func translateUserWriteError(err error) error {
	switch {
	case errors.Is(err, store.ErrConflict):
		return ErrUserConflict
	case errors.Is(err, store.ErrInvalidReference):
		return invalid("company_id", "does not exist")
	default:
		return err
	}
}
