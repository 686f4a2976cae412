package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/Harshitk-cp/tenancy/internal/domain"
)

// MockClient is an in-process OrganizationProvider for local development and
// tests. Set the error fields to force failures. It is safe for concurrent
// use; read the tracking fields only after the calls under test return.
type MockClient struct {
	CreateOrganizationError error
	GetOrganizationError    error
	DeleteOrganizationError error
	InviteUserError         error

	Organizations map[string]domain.Organization

	CreateOrganizationCalls []struct{ Name, DisplayName string }
	DeleteOrganizationCalls []string
	InviteUserCalls         []struct{ OrganizationID, OrganizationName, Email string }

	mu          sync.Mutex
	orgSeq      int
	invitations int
}

func NewMockClient() *MockClient {
	return &MockClient{Organizations: make(map[string]domain.Organization)}
}

func (m *MockClient) CreateOrganization(ctx context.Context, name, displayName string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateOrganizationCalls = append(m.CreateOrganizationCalls, struct{ Name, DisplayName string }{name, displayName})
	if m.CreateOrganizationError != nil {
		return "", m.CreateOrganizationError
	}
	m.orgSeq++
	id := fmt.Sprintf("org_mock_%d", m.orgSeq)
	m.Organizations[name] = domain.Organization{ID: id, Name: name, DisplayName: displayName}
	return id, nil
}

func (m *MockClient) GetOrganizationByName(ctx context.Context, name string) (*domain.Organization, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lookup(name)
}

// lookup requires m.mu.
func (m *MockClient) lookup(name string) (*domain.Organization, error) {
	if m.GetOrganizationError != nil {
		return nil, m.GetOrganizationError
	}
	org, ok := m.Organizations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOrganizationNotFound, name)
	}
	return &org, nil
}

func (m *MockClient) DeleteOrganization(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteOrganizationCalls = append(m.DeleteOrganizationCalls, name)
	if _, err := m.lookup(name); err != nil {
		return err
	}
	if m.DeleteOrganizationError != nil {
		return m.DeleteOrganizationError
	}
	delete(m.Organizations, name)
	return nil
}

func (m *MockClient) InviteUser(ctx context.Context, organizationID, organizationName, email string) (*domain.Invitation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InviteUserCalls = append(m.InviteUserCalls, struct{ OrganizationID, OrganizationName, Email string }{organizationID, organizationName, email})
	if m.InviteUserError != nil {
		return nil, m.InviteUserError
	}
	m.invitations++
	id := fmt.Sprintf("uinv_mock_%d", m.invitations)
	return &domain.Invitation{
		ID:             id,
		OrganizationID: organizationID,
		InvitationURL:  fmt.Sprintf("https://login.example.test/invite?organization=%s&invitation=%s", organizationID, id),
		Inviter:        domain.InvitationParty{Name: organizationName},
		Invitee:        domain.InvitationParty{Email: email},
	}, nil
}
