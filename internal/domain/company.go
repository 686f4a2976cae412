package domain

import (
	"strings"
	"time"
)

type Classification string

const (
	ClassificationSmall      Classification = "SMALL"
	ClassificationMedium     Classification = "MEDIUM"
	ClassificationLarge      Classification = "LARGE"
	ClassificationEnterprise Classification = "ENTERPRISE"
)

// Revenue thresholds in millions.
const (
	MediumRevenueThreshold     = 1.0
	LargeRevenueThreshold      = 10.0
	EnterpriseRevenueThreshold = 100.0
)

// Classify derives the revenue tier for an estimated revenue in millions.
func Classify(estimatedRevenue float64) Classification {
	switch {
	case estimatedRevenue >= EnterpriseRevenueThreshold:
		return ClassificationEnterprise
	case estimatedRevenue >= LargeRevenueThreshold:
		return ClassificationLarge
	case estimatedRevenue >= MediumRevenueThreshold:
		return ClassificationMedium
	default:
		return ClassificationSmall
	}
}

// Slugify turns a display name into the unique company name used as the
// organization name at the identity provider.
func Slugify(friendlyName string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(friendlyName), " ", "-"))
}

type BillingInfo struct {
	Email        string `json:"billing_email"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"zip_code"`
	Country      string `json:"country"`
}

type Company struct {
	ID                  int64          `json:"company_id"`
	Name                string         `json:"name"`
	FriendlyName        string         `json:"friendly_name"`
	IndustryID          *int64         `json:"industry_id,omitempty"`
	EstimatedRevenue    float64        `json:"estimated_revenue"`
	Classification      Classification `json:"classification"`
	Auth0OrganizationID *string        `json:"auth0_organization_id,omitempty"`
	StripeCustomerID    *string        `json:"stripe_customer_id,omitempty"`
	Billing             BillingInfo    `json:"billing_info"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

// CompanyUpdate carries a partial update. Nil fields are left untouched.
type CompanyUpdate struct {
	FriendlyName     *string
	IndustryID       *int64
	EstimatedRevenue *float64
	Classification   *Classification
}

func (u CompanyUpdate) Empty() bool {
	return u.FriendlyName == nil && u.IndustryID == nil && u.EstimatedRevenue == nil && u.Classification == nil
}
