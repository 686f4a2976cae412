package service

import (
	"context"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/Harshitk-cp/tenancy/internal/store"
	"github.com/stretchr/testify/mock"
)

// fakeCompanyStore implements domain.CompanyStore for testing.
type fakeCompanyStore struct {
	companies map[int64]domain.Company
	nextID    int64
	createErr error
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{companies: make(map[int64]domain.Company), nextID: 1}
}

func (f *fakeCompanyStore) seed(c domain.Company) {
	f.companies[c.ID] = c
	if c.ID >= f.nextID {
		f.nextID = c.ID + 1
	}
}

func (f *fakeCompanyStore) Create(ctx context.Context, c *domain.Company) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.companies {
		if existing.Name == c.Name {
			return store.ErrConflict
		}
	}
	c.ID = f.nextID
	f.nextID++
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
	out := []domain.Company{}
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

// fakeUserStore implements domain.UserStore for testing.
type fakeUserStore struct {
	users  map[int64]domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int64]domain.User), nextID: 1}
}

func (f *fakeUserStore) byEmail(email string) (domain.User, bool) {
	for _, u := range f.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

func (f *fakeUserStore) Create(ctx context.Context, u *domain.User) error {
	if _, ok := f.byEmail(u.Email); ok {
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
	u, ok := f.byEmail(email)
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) ListByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	out := []domain.User{}
	for id := int64(1); id < f.nextID; id++ {
		if u, ok := f.users[id]; ok && u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) CreateIfNotExists(ctx context.Context, u *domain.User) (bool, error) {
	if existing, ok := f.byEmail(u.Email); ok {
		*u = existing
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

// fakeIndustryStore implements domain.IndustryStore for testing.
type fakeIndustryStore struct {
	industries []domain.CompanyIndustry
}

func (f *fakeIndustryStore) List(ctx context.Context) ([]domain.CompanyIndustry, error) {
	return f.industries, nil
}

func (f *fakeIndustryStore) GetByID(ctx context.Context, id int64) (*domain.CompanyIndustry, error) {
	for _, i := range f.industries {
		if i.ID == id {
			return &i, nil
		}
	}
	return nil, store.ErrNotFound
}

func testIndustries() *fakeIndustryStore {
	return &fakeIndustryStore{industries: []domain.CompanyIndustry{
		{ID: 1, Name: "Software", CategoryName: "Technology", CategoryDescription: "Tech"},
		{ID: 2, Name: "Aerospace", CategoryName: "Manufacturing", CategoryDescription: "Goods"},
		{ID: 3, Name: "Hardware", CategoryName: "Technology", CategoryDescription: "Tech"},
	}}
}

// MockOrganizationProvider mocks the domain.OrganizationProvider interface.
type MockOrganizationProvider struct {
	mock.Mock
}

func (m *MockOrganizationProvider) CreateOrganization(ctx context.Context, name, displayName string) (string, error) {
	args := m.Called(ctx, name, displayName)
	return args.String(0), args.Error(1)
}

func (m *MockOrganizationProvider) GetOrganizationByName(ctx context.Context, name string) (*domain.Organization, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

func (m *MockOrganizationProvider) DeleteOrganization(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockOrganizationProvider) InviteUser(ctx context.Context, organizationID, organizationName, email string) (*domain.Invitation, error) {
	args := m.Called(ctx, organizationID, organizationName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}
