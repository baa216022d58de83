package googleads

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"adsgateway-service/internal/config"
	"adsgateway-service/internal/pkg/apierror"
)

func oauthConfig() config.GoogleAdsConfig {
	return config.GoogleAdsConfig{
		DeveloperToken: "dev-token",
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
		RefreshToken:   "refresh-token",
		AuthType:       config.AuthTypeOAuth,
	}
}

func TestNewCredentialsRejectsIncompleteConfig(t *testing.T) {
	cfg := oauthConfig()
	cfg.RefreshToken = ""

	_, err := NewCredentials(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindConfiguration))
}

func TestNewCredentialsOAuth(t *testing.T) {
	creds, err := NewCredentials(context.Background(), oauthConfig())
	require.NoError(t, err)
	assert.NotNil(t, creds)
}

func TestNewCredentialsServiceAccountMissingKeyFile(t *testing.T) {
	cfg := config.GoogleAdsConfig{
		DeveloperToken:  "dev-token",
		AuthType:        config.AuthTypeServiceAccount,
		CredentialsPath: filepath.Join(t.TempDir(), "missing.json"),
	}

	_, err := NewCredentials(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindConfiguration))
}

func TestNewCredentialsServiceAccountMalformedKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	cfg := config.GoogleAdsConfig{
		DeveloperToken:  "dev-token",
		AuthType:        config.AuthTypeServiceAccount,
		CredentialsPath: path,
	}

	_, err := NewCredentials(context.Background(), cfg)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindConfiguration))
}

func TestHeaders(t *testing.T) {
	cfg := oauthConfig()
	cfg.LoginCustomerID = "987-318-6703"
	creds := &Credentials{
		cfg: cfg,
		ts:  oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "short-lived"}),
	}

	h, err := creds.Headers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer short-lived", h.Get("Authorization"))
	assert.Equal(t, "dev-token", h.Get("developer-token"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, "9873186703", h.Get("login-customer-id"))
}

func TestHeadersOmitsLoginCustomerIDWhenUnset(t *testing.T) {
	creds := &Credentials{
		cfg: oauthConfig(),
		ts:  oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "short-lived"}),
	}

	h, err := creds.Headers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, h.Get("login-customer-id"))
}

type failingTokenSource struct{ err error }

func (f failingTokenSource) Token() (*oauth2.Token, error) { return nil, f.err }

func TestHeadersTokenFailureIsAuthenticationError(t *testing.T) {
	creds := &Credentials{
		cfg: oauthConfig(),
		ts:  failingTokenSource{err: assert.AnError},
	}

	_, err := creds.Headers(context.Background())
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindAuthentication))
}
