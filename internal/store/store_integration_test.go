//go:build integration

package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

func setupPostgres(t *testing.T, ctx context.Context) *pgxpool.Pool {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "tenancy",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	pool, err := NewPool(ctx, PoolConfig{
		ConnString: fmt.Sprintf("postgres://test:test@%s:%s/tenancy?sslmode=disable", host, port.Port()),
	})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool, zap.NewNop()))
	// A second run must be a no-op.
	require.NoError(t, Migrate(ctx, pool, zap.NewNop()))
	return pool
}

func newTestCompany(name string, revenue float64) *domain.Company {
	return &domain.Company{
		Name:             domain.Slugify(name),
		FriendlyName:     name,
		EstimatedRevenue: revenue,
		Classification:   domain.Classify(revenue),
		Billing: domain.BillingInfo{
			Email:        "billing@" + domain.Slugify(name) + ".test",
			AddressLine1: "1 Launch Pad",
			City:         "Mojave",
			State:        "CA",
			PostalCode:   "93501",
			Country:      "US",
		},
	}
}

func TestIntegration_Stores(t *testing.T) {
	ctx := context.Background()
	pool := setupPostgres(t, ctx)

	companies := NewCompanyStore(pool)
	users := NewUserStore(pool)
	industries := NewIndustryStore(pool)

	t.Run("industry catalog is seeded", func(t *testing.T) {
		list, err := industries.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, list)

		got, err := industries.GetByID(ctx, list[0].ID)
		require.NoError(t, err)
		assert.Equal(t, list[0].Name, got.Name)

		_, err = industries.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	var acme *domain.Company

	t.Run("create and fetch company", func(t *testing.T) {
		acme = newTestCompany("Acme Rockets", 5.0)
		orgID, customerID := "org_123", "cus_123"
		acme.Auth0OrganizationID = &orgID
		acme.StripeCustomerID = &customerID

		require.NoError(t, companies.Create(ctx, acme))
		require.NotZero(t, acme.ID)

		byID, err := companies.GetByID(ctx, acme.ID)
		require.NoError(t, err)
		assert.Equal(t, "acme-rockets", byID.Name)
		assert.Equal(t, domain.ClassificationMedium, byID.Classification)
		require.NotNil(t, byID.Auth0OrganizationID)
		assert.Equal(t, "org_123", *byID.Auth0OrganizationID)

		byName, err := companies.GetByName(ctx, "acme-rockets")
		require.NoError(t, err)
		assert.Equal(t, acme.ID, byName.ID)
	})

	t.Run("duplicate company name conflicts", func(t *testing.T) {
		err := companies.Create(ctx, newTestCompany("Acme Rockets", 1))
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing company is not found", func(t *testing.T) {
		_, err := companies.GetByID(ctx, 424242)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = companies.GetByName(ctx, "nobody")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("partial update leaves other fields", func(t *testing.T) {
		list, err := industries.List(ctx)
		require.NoError(t, err)
		industryID := list[0].ID

		updated, err := companies.UpdateAttrs(ctx, acme.ID, domain.CompanyUpdate{IndustryID: &industryID})
		require.NoError(t, err)
		require.NotNil(t, updated.IndustryID)

		revenue := 150.0
		class := domain.Classify(revenue)
		updated, err = companies.UpdateAttrs(ctx, acme.ID, domain.CompanyUpdate{
			EstimatedRevenue: &revenue,
			Classification:   &class,
		})
		require.NoError(t, err)
		assert.Equal(t, 150.0, updated.EstimatedRevenue)
		assert.Equal(t, domain.ClassificationEnterprise, updated.Classification)
		assert.Equal(t, "Acme Rockets", updated.FriendlyName)
		require.NotNil(t, updated.IndustryID)
		assert.Equal(t, industryID, *updated.IndustryID)

		_, err = companies.UpdateAttrs(ctx, 424242, domain.CompanyUpdate{EstimatedRevenue: &revenue})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown industry is invalid reference", func(t *testing.T) {
		bogus := int64(999999)
		_, err := companies.UpdateAttrs(ctx, acme.ID, domain.CompanyUpdate{IndustryID: &bogus})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("list companies", func(t *testing.T) {
		list, err := companies.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("create user if not exists is idempotent", func(t *testing.T) {
		first := &domain.User{Email: "a@b.com", FirstName: "Ada", LastName: "Byron", CompanyID: acme.ID}
		created, err := users.CreateIfNotExists(ctx, first)
		require.NoError(t, err)
		assert.True(t, created)

		second := &domain.User{Email: "a@b.com", FirstName: "Other", CompanyID: acme.ID}
		created, err = users.CreateIfNotExists(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Ada", second.FirstName)

		list, err := users.ListByCompany(ctx, acme.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("plain create conflicts on email", func(t *testing.T) {
		err := users.Create(ctx, &domain.User{Email: "a@b.com", CompanyID: acme.ID})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("user for unknown company is invalid reference", func(t *testing.T) {
		err := users.Create(ctx, &domain.User{Email: "x@y.com", CompanyID: 424242})
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("user lookups and name update", func(t *testing.T) {
		u, err := users.GetByEmail(ctx, "a@b.com")
		require.NoError(t, err)

		byID, err := users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", byID.Email)

		last := "Lovelace"
		updated, err := users.UpdateNames(ctx, u.ID, domain.UserUpdate{LastName: &last})
		require.NoError(t, err)
		assert.Equal(t, "Ada", updated.FirstName)
		assert.Equal(t, "Lovelace", updated.LastName)

		_, err = users.GetByID(ctx, 424242)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = users.GetByEmail(ctx, "missing@b.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
