package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

var ErrOrganizationNotFound = errors.New("organization not found")

// APIError is a non-2xx response from the Auth0 Management API.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("auth0 %s returned status %d: %s", e.Op, e.StatusCode, e.Body)
}

type Config struct {
	// Domain is the tenant domain, e.g. "acme.us.auth0.com". A value with an
	// explicit http:// or https:// scheme is used as the base URL unchanged.
	Domain       string
	ClientID     string
	ClientSecret string
	// Audience defaults to the Management API of Domain.
	Audience string
	// PlatformClientID is the application invitations are issued for.
	PlatformClientID string
	ConnectionID     string
}

func (c Config) baseURL() string {
	d := strings.TrimRight(c.Domain, "/")
	if strings.HasPrefix(d, "http://") || strings.HasPrefix(d, "https://") {
		return d
	}
	return "https://" + d
}

// Auth0Client talks to the Auth0 Management API. It holds one access token
// and refreshes it lazily when it is absent or expired.
type Auth0Client struct {
	cfg        Config
	baseURL    string
	oauth      *clientcredentials.Config
	httpClient *http.Client
	logger     *zap.Logger
	now        func() time.Time

	mu          sync.Mutex
	accessToken string
	expiration  time.Time
}

func NewAuth0Client(cfg Config, logger *zap.Logger) *Auth0Client {
	base := cfg.baseURL()
	audience := cfg.Audience
	if audience == "" {
		audience = base + "/api/v2/"
	}

	return &Auth0Client{
		cfg:     cfg,
		baseURL: base,
		oauth: &clientcredentials.Config{
			ClientID:       cfg.ClientID,
			ClientSecret:   cfg.ClientSecret,
			TokenURL:       base + "/oauth/token",
			EndpointParams: url.Values{"audience": {audience}},
			AuthStyle:      oauth2.AuthStyleInParams,
		},
		httpClient: &http.Client{},
		logger:     logger,
		now:        time.Now,
	}
}

// Token returns a valid access token, exchanging client credentials for a new
// one when none is held or the held one has expired. Refreshes are serialised
// so concurrent callers share one exchange.
func (c *Auth0Client) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && c.now().Before(c.expiration) {
		return c.accessToken, nil
	}

	c.logger.Info("requesting new auth0 access token", zap.Bool("had_token", c.accessToken != ""))
	tok, err := c.oauth.Token(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient))
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && rErr.Response != nil {
			return "", &APIError{Op: "token exchange", StatusCode: rErr.Response.StatusCode, Body: string(rErr.Body)}
		}
		return "", fmt.Errorf("auth0 token exchange failed: %w", err)
	}

	c.accessToken = tok.AccessToken
	c.expiration = c.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.logger.Info("auth0 access token refreshed", zap.Time("expires_at", c.expiration))
	return c.accessToken, nil
}

func (c *Auth0Client) do(ctx context.Context, op, method, path string, in, out any) error {
	token, err := c.Token(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal auth0 %s request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create auth0 %s request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth0 %s request failed: %w", op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read auth0 %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal auth0 %s response: %w", op, err)
	}
	return nil
}

type createOrganizationRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func (c *Auth0Client) CreateOrganization(ctx context.Context, name, displayName string) (string, error) {
	c.logger.Info("creating auth0 organization", zap.String("name", name))

	var org domain.Organization
	err := c.do(ctx, "create organization", http.MethodPost, "/api/v2/organizations",
		createOrganizationRequest{Name: name, DisplayName: displayName}, &org)
	if err != nil {
		return "", err
	}
	if org.ID == "" {
		return "", fmt.Errorf("auth0 create organization returned no id")
	}

	c.logger.Info("created auth0 organization", zap.String("name", name), zap.String("organization_id", org.ID))
	return org.ID, nil
}

func (c *Auth0Client) GetOrganizationByName(ctx context.Context, name string) (*domain.Organization, error) {
	var org domain.Organization
	err := c.do(ctx, "get organization", http.MethodGet, "/api/v2/organizations/name/"+url.PathEscape(name), nil, &org)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrOrganizationNotFound, name)
		}
		return nil, err
	}
	return &org, nil
}

// DeleteOrganization resolves name to an id and deletes it. The two calls are
// independent; a failed delete leaves the organization in place.
func (c *Auth0Client) DeleteOrganization(ctx context.Context, name string) error {
	org, err := c.GetOrganizationByName(ctx, name)
	if err != nil {
		return err
	}

	c.logger.Info("deleting auth0 organization", zap.String("name", name), zap.String("organization_id", org.ID))
	return c.do(ctx, "delete organization", http.MethodDelete, "/api/v2/organizations/"+url.PathEscape(org.ID), nil, nil)
}

type invitationRequest struct {
	Inviter      domain.InvitationParty `json:"inviter"`
	Invitee      domain.InvitationParty `json:"invitee"`
	ClientID     string                 `json:"client_id"`
	ConnectionID string                 `json:"connection_id,omitempty"`
	AppMetadata  map[string]any         `json:"app_metadata"`
}

func (c *Auth0Client) InviteUser(ctx context.Context, organizationID, organizationName, email string) (*domain.Invitation, error) {
	c.logger.Info("inviting user to auth0 organization",
		zap.String("email", email), zap.String("organization_id", organizationID))

	var raw json.RawMessage
	err := c.do(ctx, "create invitation", http.MethodPost,
		"/api/v2/organizations/"+url.PathEscape(organizationID)+"/invitations",
		invitationRequest{
			Inviter:      domain.InvitationParty{Name: organizationName},
			Invitee:      domain.InvitationParty{Email: email},
			ClientID:     c.cfg.PlatformClientID,
			ConnectionID: c.cfg.ConnectionID,
			AppMetadata:  map[string]any{"email_verified": true},
		}, &raw)
	if err != nil {
		return nil, err
	}

	var inv domain.Invitation
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, fmt.Errorf("unmarshal auth0 create invitation response: %w", err)
	}
	inv.Raw = raw
	return &inv, nil
}
