package identity

import (
	"fmt"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"go.uber.org/zap"
)

const (
	ProviderAuth0 = "auth0"
	ProviderMock  = "mock"
)

// NewClient creates an organization provider by name. The auth0 provider
// requires a domain and client credentials.
func NewClient(provider string, cfg Config, logger *zap.Logger) (domain.OrganizationProvider, error) {
	switch provider {
	case ProviderAuth0:
		if cfg.Domain == "" {
			return nil, fmt.Errorf("AUTH0_DOMAIN is required for auth0 identity provider")
		}
		if cfg.ClientID == "" || cfg.ClientSecret == "" {
			return nil, fmt.Errorf("AUTH0_CLIENT_ID and AUTH0_CLIENT_SECRET are required for auth0 identity provider")
		}
		if cfg.PlatformClientID == "" {
			return nil, fmt.Errorf("AUTH0_PLATFORM_CLIENT_ID is required for auth0 identity provider")
		}
		return NewAuth0Client(cfg, logger), nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown identity provider: %s (valid options: auth0, mock)", provider)
	}
}
