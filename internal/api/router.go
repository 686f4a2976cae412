package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/Harshitk-cp/tenancy/internal/api/handlers"
	mw "github.com/Harshitk-cp/tenancy/internal/api/middleware"
	"github.com/Harshitk-cp/tenancy/internal/billing"
	"github.com/Harshitk-cp/tenancy/internal/buildconfig"
	"github.com/Harshitk-cp/tenancy/internal/config"
	"github.com/Harshitk-cp/tenancy/internal/domain"
	"github.com/Harshitk-cp/tenancy/internal/identity"
	"github.com/Harshitk-cp/tenancy/internal/service"
	"github.com/Harshitk-cp/tenancy/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Pinger reports database liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Services struct {
	Companies  *service.CompanyService
	Users      *service.UserService
	Industries *service.IndustryService
}

type Options struct {
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
}

// App holds the router and the request counters exposed on /metrics.
type App struct {
	Router    *chi.Mux
	metrics   *mw.MetricsCollector
	startTime time.Time
}

// NewApp wires stores, providers, and services from the environment
// configuration. ctx bounds background middleware work.
func NewApp(ctx context.Context, db *pgxpool.Pool, logger *zap.Logger) (*App, error) {
	companyStore := store.NewCompanyStore(db)
	userStore := store.NewUserStore(db)
	industryStore := store.NewIndustryStore(db)

	identityProvider := config.IdentityProvider()
	orgs, err := identity.NewClient(identityProvider, identity.Config{
		Domain:           config.Auth0Domain(),
		ClientID:         config.Auth0ClientID(),
		ClientSecret:     config.Auth0ClientSecret(),
		Audience:         config.Auth0Audience(),
		PlatformClientID: config.Auth0PlatformClientID(),
		ConnectionID:     config.Auth0ConnectionID(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("identity client: %w", err)
	}
	logger.Info("identity client initialized", zap.String("provider", identityProvider))

	billingProvider := config.BillingProvider()
	billingClient, err := billing.NewClient(billingProvider, billing.Config{
		APIKey:            config.StripeAPIKey(),
		MaxNetworkRetries: config.StripeMaxNetworkRetries(),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("billing client: %w", err)
	}
	logger.Info("billing client initialized", zap.String("provider", billingProvider))

	svcs := Services{
		Companies:  service.NewCompanyService(companyStore, industryStore, orgs, billingClient, logger),
		Users:      service.NewUserService(userStore, logger),
		Industries: service.NewIndustryService(industryStore),
	}

	return NewRouter(ctx, db, svcs, Options{
		CORSOrigins:    config.CORSOrigins(),
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
	}, logger), nil
}

// NewRouter mounts the middleware chain and routes over already built services.
func NewRouter(ctx context.Context, db Pinger, svcs Services, opts Options, logger *zap.Logger) *App {
	companyHandler := handlers.NewCompanyHandler(svcs.Companies, svcs.Industries, logger)
	userHandler := handlers.NewUserHandler(svcs.Users, logger)

	r := chi.NewRouter()
	app := &App{
		Router:    r,
		metrics:   mw.NewMetricsCollector(),
		startTime: time.Now(),
	}

	// Order matters: request id first so every later layer can log it.
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(app.metrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: opts.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", mw.RequestIDHeader},
		ExposedHeaders: []string{mw.RequestIDHeader},
		MaxAge:         300,
	}).Handler)
	if opts.RateLimitRPS > 0 {
		r.Use(mw.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))
	}

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	r.Route("/company", func(r chi.Router) {
		r.Get("/", companyHandler.List)
		r.Post("/", companyHandler.Create)
		r.Get("/industries", companyHandler.Industries)
		r.Get("/name/{name}", companyHandler.GetByName)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", companyHandler.GetByID)
			r.Put("/", companyHandler.Update)
			r.Post("/invite", companyHandler.Invite)
		})
	})

	r.Route("/user", func(r chi.Router) {
		r.Post("/", userHandler.Create)
		r.Get("/email/{email}", userHandler.GetByEmail)
		r.Get("/list/{company_id}", userHandler.ListByCompany)
		r.Get("/{id}", userHandler.GetByID)
		r.Patch("/{id}", userHandler.Update)
	})

	return app
}

func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := db.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{"status": "ok", "build": buildconfig.Current()})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"requests":       app.metrics.Snapshot(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
				"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
				"num_gc":   memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores and clients satisfy interfaces at compile time.
var (
	_ domain.CompanyStore         = (*store.CompanyStore)(nil)
	_ domain.UserStore            = (*store.UserStore)(nil)
	_ domain.IndustryStore        = (*store.IndustryStore)(nil)
	_ domain.OrganizationProvider = (*identity.Auth0Client)(nil)
	_ domain.OrganizationProvider = (*identity.MockClient)(nil)
	_ domain.BillingProvider      = (*billing.StripeClient)(nil)
	_ domain.BillingProvider      = (*billing.MockClient)(nil)
	_ Pinger                      = (*pgxpool.Pool)(nil)
)
