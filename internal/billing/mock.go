package billing

import (
	"context"
	"fmt"
	"sync"

	"github.com/Harshitk-cp/tenancy/internal/domain"
)

// MockClient records customer creations and hands out sequential ids. It is
// safe for concurrent use.
type MockClient struct {
	CreateCustomerError error
	CreateCustomerCalls []domain.CustomerParams

	mu  sync.Mutex
	seq int
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) CreateCustomer(ctx context.Context, p domain.CustomerParams) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateCustomerCalls = append(m.CreateCustomerCalls, p)
	if m.CreateCustomerError != nil {
		return "", m.CreateCustomerError
	}
	m.seq++
	return fmt.Sprintf("cus_mock_%d", m.seq), nil
}
