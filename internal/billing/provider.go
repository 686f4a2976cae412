package billing

import (
	"fmt"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"go.uber.org/zap"
)

const (
	ProviderStripe = "stripe"
	ProviderMock   = "mock"
)

// NewClient creates and initializes a billing provider by name.
func NewClient(provider string, cfg Config, logger *zap.Logger) (domain.BillingProvider, error) {
	switch provider {
	case ProviderStripe:
		c := NewStripeClient(cfg, logger)
		if err := c.Init(); err != nil {
			return nil, err
		}
		return c, nil

	case ProviderMock:
		return NewMockClient(), nil

	default:
		return nil, fmt.Errorf("unknown billing provider: %s (valid options: stripe, mock)", provider)
	}
}
