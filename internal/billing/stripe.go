package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"go.uber.org/zap"
)

const DefaultMaxNetworkRetries = 2

var ErrNotInitialized = errors.New("billing client not initialized")

type Config struct {
	APIKey string
	// MaxNetworkRetries is handed to the Stripe SDK's own retry policy.
	MaxNetworkRetries int64
	// URL overrides the Stripe API endpoint.
	URL string
}

// StripeClient is constructed with its configuration and becomes usable after
// Init builds the underlying SDK client.
type StripeClient struct {
	cfg    Config
	logger *zap.Logger
	api    *client.API
}

func NewStripeClient(cfg Config, logger *zap.Logger) *StripeClient {
	if cfg.MaxNetworkRetries < 0 {
		cfg.MaxNetworkRetries = DefaultMaxNetworkRetries
	}
	return &StripeClient{cfg: cfg, logger: logger}
}

func (c *StripeClient) Init() error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("stripe API key is required")
	}

	backendConfig := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(c.cfg.MaxNetworkRetries),
		LeveledLogger:     c.logger.Sugar(),
	}
	if c.cfg.URL != "" {
		backendConfig.URL = stripe.String(c.cfg.URL)
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig)

	api := &client.API{}
	api.Init(c.cfg.APIKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, &stripe.BackendConfig{
			MaxNetworkRetries: stripe.Int64(c.cfg.MaxNetworkRetries),
			LeveledLogger:     c.logger.Sugar(),
		}),
	})
	c.api = api

	c.logger.Info("stripe client initialized", zap.Int64("max_network_retries", c.cfg.MaxNetworkRetries))
	return nil
}

func (c *StripeClient) CreateCustomer(ctx context.Context, p domain.CustomerParams) (string, error) {
	if c.api == nil {
		return "", ErrNotInitialized
	}

	params := &stripe.CustomerParams{
		Name:  stripe.String(p.Name),
		Email: stripe.String(p.Email),
		Address: &stripe.AddressParams{
			Line1:      stripe.String(p.Address.Line1),
			City:       stripe.String(p.Address.City),
			State:      stripe.String(p.Address.State),
			PostalCode: stripe.String(p.Address.PostalCode),
			Country:    stripe.String(p.Address.Country),
		},
	}
	if p.Address.Line2 != "" {
		params.Address.Line2 = stripe.String(p.Address.Line2)
	}
	params.Context = ctx

	cust, err := c.api.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create customer: %w", err)
	}

	c.logger.Info("created stripe customer", zap.String("name", p.Name), zap.String("customer_id", cust.ID))
	return cust.ID, nil
}
