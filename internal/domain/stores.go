package domain

import "context"

type CompanyStore interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
	List(ctx context.Context) ([]Company, error)
	UpdateAttrs(ctx context.Context, id int64, u CompanyUpdate) (*Company, error)
}

type UserStore interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByCompany(ctx context.Context, companyID int64) ([]User, error)
	// CreateIfNotExists inserts u unless a user with the same email exists.
	// It reports whether a row was inserted; u is filled from the stored row either way.
	CreateIfNotExists(ctx context.Context, u *User) (bool, error)
	UpdateNames(ctx context.Context, id int64, upd UserUpdate) (*User, error)
}

type IndustryStore interface {
	List(ctx context.Context) ([]CompanyIndustry, error)
	GetByID(ctx context.Context, id int64) (*CompanyIndustry, error)
}

// OrganizationProvider manages tenant organizations and invitations at the
// identity provider.
type OrganizationProvider interface {
	CreateOrganization(ctx context.Context, name, displayName string) (string, error)
	GetOrganizationByName(ctx context.Context, name string) (*Organization, error)
	DeleteOrganization(ctx context.Context, name string) error
	InviteUser(ctx context.Context, organizationID, organizationName, email string) (*Invitation, error)
}

type BillingProvider interface {
	CreateCustomer(ctx context.Context, params CustomerParams) (string, error)
}
