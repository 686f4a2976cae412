package handlers

import (
	"context"
	"time"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/Harshitk-cp/tenancy/internal/store"
)

type fakeCompanyStore struct {
	companies map[int64]domain.Company
	nextID    int64
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{companies: make(map[int64]domain.Company), nextID: 1}
}

func (f *fakeCompanyStore) Create(ctx context.Context, c *domain.Company) error {
	for _, existing := range f.companies {
		if existing.Name == c.Name {
			return store.ErrConflict
		}
	}
	c.ID = f.nextID
	f.nextID++
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.companies[c.ID] = *c
	return nil
}

func (f *fakeCompanyStore) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCompanyStore) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	for _, c := range f.companies {
		if c.Name == name {
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeCompanyStore) List(ctx context.Context) ([]domain.Company, error) {
	var out []domain.Company
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.companies[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompanyStore) UpdateAttrs(ctx context.Context, id int64, u domain.CompanyUpdate) (*domain.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if u.FriendlyName != nil {
		c.FriendlyName = *u.FriendlyName
	}
	if u.IndustryID != nil {
		c.IndustryID = u.IndustryID
	}
	if u.EstimatedRevenue != nil {
		c.EstimatedRevenue = *u.EstimatedRevenue
	}
	if u.Classification != nil {
		c.Classification = *u.Classification
	}
	f.companies[id] = c
	return &c, nil
}

type fakeUserStore struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]domain.User), nextID: 1}
}

func (f *fakeUserStore) Create(ctx context.Context, u *domain.User) error {
	if _, err := f.GetByEmail(ctx, u.Email); err == nil {
		return store.ErrConflict
	}
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) ListByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	var out []domain.User
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok && u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) CreateIfNotExists(ctx context.Context, u *domain.User) (bool, error) {
	if existing, err := f.GetByEmail(ctx, u.Email); err == nil {
		*u = *existing
		return false, nil
	}
	return true, f.Create(ctx, u)
}

func (f *fakeUserStore) UpdateNames(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	f.users[id] = u
	return &u, nil
}

type fakeIndustryStore struct {
	industries []domain.CompanyIndustry
}

func (f *fakeIndustryStore) List(ctx context.Context) ([]domain.CompanyIndustry, error) {
	return f.industries, nil
}

func (f *fakeIndustryStore) GetByID(ctx context.Context, id int64) (*domain.CompanyIndustry, error) {
	for _, ind := range f.industries {
		if ind.ID == id {
			return &ind, nil
		}
	}
	return nil, store.ErrNotFound
}
