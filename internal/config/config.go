package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by TENANCY_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("TENANCY_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; the environment may already be populated.
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func ServerPort() int {
	return getInt("SERVER_PORT", 8798)
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func DBMaxConns() int32 {
	return int32(getInt("DB_MAX_CONNS", 10))
}

func DBMinConns() int32 {
	return int32(getInt("DB_MIN_CONNS", 1))
}

// AutoMigrate reports whether embedded migrations run on startup.
func AutoMigrate() bool {
	v, err := strconv.ParseBool(os.Getenv("AUTO_MIGRATE"))
	return err == nil && v
}

// IdentityProvider returns the configured organization provider.
// Valid values: auth0, mock. Defaults to auth0.
func IdentityProvider() string {
	return getString("IDENTITY_PROVIDER", "auth0")
}

func Auth0Domain() string {
	return os.Getenv("AUTH0_DOMAIN")
}

func Auth0ClientID() string {
	return os.Getenv("AUTH0_CLIENT_ID")
}

func Auth0ClientSecret() string {
	return os.Getenv("AUTH0_CLIENT_SECRET")
}

// Auth0Audience is empty unless overridden; the client then targets the
// Management API of AUTH0_DOMAIN.
func Auth0Audience() string {
	return os.Getenv("AUTH0_AUDIENCE")
}

func Auth0PlatformClientID() string {
	return os.Getenv("AUTH0_PLATFORM_CLIENT_ID")
}

func Auth0ConnectionID() string {
	return os.Getenv("AUTH0_CONNECTION_ID")
}

// BillingProvider returns the configured billing provider.
// Valid values: stripe, mock. Defaults to stripe.
func BillingProvider() string {
	return getString("BILLING_PROVIDER", "stripe")
}

func StripeAPIKey() string {
	return os.Getenv("STRIPE_API_KEY")
}

// StripeMaxNetworkRetries defaults to 2. Zero disables SDK retries.
func StripeMaxNetworkRetries() int64 {
	v, err := strconv.ParseInt(os.Getenv("STRIPE_MAX_NETWORK_RETRIES"), 10, 64)
	if err != nil || v < 0 {
		return 2
	}
	return v
}

// CORSOrigins returns the comma-separated CORS_ORIGINS list.
// Defaults to allowing http://localhost:3000.
func CORSOrigins() []string {
	raw := getString("CORS_ORIGINS", "http://localhost:3000")
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	return getInt("RATE_LIMIT_BURST", 20)
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	return getString("LOG_LEVEL", "info")
}

func LogDev() bool {
	return os.Getenv("LOG_DEV") == "1"
}

// LogFile is an optional path; when set, logs are also written to a daily
// rotated file at that path.
func LogFile() string {
	return os.Getenv("LOG_FILE")
}
