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

type CompanyService struct {
	companies  domain.CompanyStore
	industries domain.IndustryStore
	orgs       domain.OrganizationProvider
	billing    domain.BillingProvider
	logger     *zap.Logger
}

func NewCompanyService(cs domain.CompanyStore, is domain.IndustryStore, orgs domain.OrganizationProvider, billing domain.BillingProvider, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companies:  cs,
		industries: is,
		orgs:       orgs,
		billing:    billing,
		logger:     logger,
	}
}

type CreateCompanyInput struct {
	FriendlyName     string
	EstimatedRevenue float64
	IndustryID       *int64
	Billing          domain.BillingInfo
}

func (in CreateCompanyInput) validate() error {
	if strings.TrimSpace(in.FriendlyName) == "" {
		return invalid("friendly_name", "is required")
	}
	if in.EstimatedRevenue <= 0 {
		return invalid("estimated_revenue", "must be greater than 0")
	}
	if in.IndustryID != nil && *in.IndustryID <= 0 {
		return invalid("industry_id", "must be greater than 0")
	}
	b := in.Billing
	required := []struct{ field, value string }{
		{"billing_info.billing_email", b.Email},
		{"billing_info.address_line1", b.AddressLine1},
		{"billing_info.city", b.City},
		{"billing_info.state", b.State},
		{"billing_info.zip_code", b.PostalCode},
		{"billing_info.country", b.Country},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return invalid(r.field, "is required")
		}
	}
	if _, err := mail.ParseAddress(b.Email); err != nil {
		return invalid("billing_info.billing_email", "is not a valid email address")
	}
	return nil
}

func (s *CompanyService) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	c, err := s.companies.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.companies.List(ctx)
}

// Create provisions the identity organization and the billing customer, then
// persists the company with both external ids. The steps are not
// transactional: a failure after provisioning leaves the external records in
// place.
func (s *CompanyService) Create(ctx context.Context, in CreateCompanyInput) (*domain.Company, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	if in.IndustryID != nil {
		if err := s.checkIndustry(ctx, *in.IndustryID); err != nil {
			return nil, err
		}
	}

	company := &domain.Company{
		Name:             domain.Slugify(in.FriendlyName),
		FriendlyName:     strings.TrimSpace(in.FriendlyName),
		IndustryID:       in.IndustryID,
		EstimatedRevenue: in.EstimatedRevenue,
		Classification:   domain.Classify(in.EstimatedRevenue),
		Billing:          in.Billing,
	}

	s.logger.Info("provisioning identity organization", zap.String("company", company.FriendlyName))
	orgID, err := s.orgs.CreateOrganization(ctx, company.Name, company.FriendlyName)
	if err != nil {
		return nil, &ProviderError{Provider: "identity", Op: "create organization", Err: err}
	}
	company.Auth0OrganizationID = &orgID
	s.logger.Info("provisioned identity organization",
		zap.String("company", company.FriendlyName), zap.String("organization_id", orgID))

	s.logger.Info("provisioning billing customer", zap.String("company", company.FriendlyName))
	customerID, err := s.billing.CreateCustomer(ctx, domain.CustomerParams{
		Name:  company.FriendlyName,
		Email: company.Billing.Email,
		Address: domain.Address{
			Line1:      company.Billing.AddressLine1,
			Line2:      company.Billing.AddressLine2,
			City:       company.Billing.City,
			State:      company.Billing.State,
			PostalCode: company.Billing.PostalCode,
			Country:    company.Billing.Country,
		},
	})
	if err != nil {
		s.logger.Error("billing provisioning failed after organization was created",
			zap.String("company", company.FriendlyName), zap.String("organization_id", orgID), zap.Error(err))
		return nil, &ProviderError{Provider: "billing", Op: "create customer", Err: err}
	}
	company.StripeCustomerID = &customerID
	s.logger.Info("provisioned billing customer",
		zap.String("company", company.FriendlyName), zap.String("customer_id", customerID))

	if err := s.companies.Create(ctx, company); err != nil {
		s.logger.Error("company persistence failed after provisioning",
			zap.String("company", company.FriendlyName),
			zap.String("organization_id", orgID),
			zap.String("customer_id", customerID),
			zap.Error(err))
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrCompanyConflict
		}
		return nil, err
	}
	return company, nil
}

// Update applies only the supplied fields. Supplying a revenue also
// re-derives the classification.
func (s *CompanyService) Update(ctx context.Context, id int64, u domain.CompanyUpdate) (*domain.Company, error) {
	if u.FriendlyName != nil && strings.TrimSpace(*u.FriendlyName) == "" {
		return nil, invalid("friendly_name", "must not be empty")
	}
	if u.EstimatedRevenue != nil {
		if *u.EstimatedRevenue <= 0 {
			return nil, invalid("estimated_revenue", "must be greater than 0")
		}
		class := domain.Classify(*u.EstimatedRevenue)
		u.Classification = &class
	}
	if u.IndustryID != nil {
		if *u.IndustryID <= 0 {
			return nil, invalid("industry_id", "must be greater than 0")
		}
		if err := s.checkIndustry(ctx, *u.IndustryID); err != nil {
			return nil, err
		}
	}

	if u.Empty() {
		return s.GetByID(ctx, id)
	}

	c, err := s.companies.UpdateAttrs(ctx, id, u)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CompanyService) checkIndustry(ctx context.Context, id int64) error {
	if _, err := s.industries.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalid("industry_id", "does not exist")
		}
		return err
	}
	return nil
}

type Invite struct {
	Company    *domain.Company
	Invitation *domain.Invitation
}

// InviteUser sends an identity provider invitation to email for the company's
// organization.
func (s *CompanyService) InviteUser(ctx context.Context, companyID int64, email string) (*Invite, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("user_email", "is not a valid email address")
	}

	company, err := s.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company.Auth0OrganizationID == nil || *company.Auth0OrganizationID == "" {
		return nil, ErrCompanyNotProvisioned
	}

	s.logger.Info("inviting user", zap.String("email", email), zap.String("company", company.FriendlyName))
	inv, err := s.orgs.InviteUser(ctx, *company.Auth0OrganizationID, company.FriendlyName, email)
	if err != nil {
		return nil, &ProviderError{Provider: "identity", Op: "create invitation", Err: err}
	}
	return &Invite{Company: company, Invitation: inv}, nil
}
