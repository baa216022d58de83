package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"adsgateway-service/internal/pkg/apierror"
)

// AuthTypeOAuth exchanges a refresh token; AuthTypeServiceAccount loads a
// JSON key file.
const (
	AuthTypeOAuth          = "oauth"
	AuthTypeServiceAccount = "service_account"
)

// GoogleAdsConfig holds upstream credentials and endpoint settings. All
// values come from the environment at startup; nothing is persisted.
type GoogleAdsConfig struct {
	DeveloperToken  string
	ClientID        string
	ClientSecret    string
	RefreshToken    string
	LoginCustomerID string
	AuthType        string
	CredentialsPath string

	Endpoint   string
	APIVersion string
}

type AppConfig struct {
	// Server
	HTTPAddr string
	Env      string

	// Upstream
	GoogleAds GoogleAdsConfig

	// Outbound call behavior
	HTTPTimeout       time.Duration
	RetryMaxAttempts  int
	RetryBaseDelay    time.Duration
	RequestsPerSecond float64
	RequestBurst      int
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		Env:      getEnv("APP_ENV", "production"),

		GoogleAds: GoogleAdsConfig{
			DeveloperToken:  getEnv("GOOGLE_ADS_DEVELOPER_TOKEN", ""),
			ClientID:        getEnv("GOOGLE_ADS_CLIENT_ID", ""),
			ClientSecret:    getEnv("GOOGLE_ADS_CLIENT_SECRET", ""),
			RefreshToken:    getEnv("GOOGLE_ADS_REFRESH_TOKEN", ""),
			LoginCustomerID: getEnv("GOOGLE_ADS_LOGIN_CUSTOMER_ID", ""),
			AuthType:        strings.ToLower(getEnv("GOOGLE_ADS_AUTH_TYPE", AuthTypeOAuth)),
			CredentialsPath: getEnv("GOOGLE_ADS_CREDENTIALS_PATH", ""),
			Endpoint:        getEnv("GOOGLE_ADS_ENDPOINT", "https://googleads.googleapis.com"),
			APIVersion:      getEnv("GOOGLE_ADS_API_VERSION", "v21"),
		},

		HTTPTimeout:       getEnvDuration("UPSTREAM_TIMEOUT", 30*time.Second),
		RetryMaxAttempts:  getEnvInt("RETRY_MAX_ATTEMPTS", 3),
		RetryBaseDelay:    getEnvDuration("RETRY_BASE_DELAY", 500*time.Millisecond),
		RequestsPerSecond: getEnvFloat("UPSTREAM_RPS", 5),
		RequestBurst:      getEnvInt("UPSTREAM_BURST", 10),
	}
}

// Validate reports missing mandatory credentials as a configuration error
// listing the absent variable names.
func (c GoogleAdsConfig) Validate() error {
	var missing []string
	if c.DeveloperToken == "" {
		missing = append(missing, "GOOGLE_ADS_DEVELOPER_TOKEN")
	}
	switch c.AuthType {
	case AuthTypeServiceAccount:
		if c.CredentialsPath == "" {
			missing = append(missing, "GOOGLE_ADS_CREDENTIALS_PATH")
		}
	default:
		if c.ClientID == "" {
			missing = append(missing, "GOOGLE_ADS_CLIENT_ID")
		}
		if c.ClientSecret == "" {
			missing = append(missing, "GOOGLE_ADS_CLIENT_SECRET")
		}
		if c.RefreshToken == "" {
			missing = append(missing, "GOOGLE_ADS_REFRESH_TOKEN")
		}
	}
	if len(missing) > 0 {
		return apierror.Configuration(
			"missing required environment variables: "+strings.Join(missing, ", "),
			missing,
		)
	}
	return nil
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
