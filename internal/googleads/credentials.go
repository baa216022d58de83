package googleads

import (
	"context"
	"errors"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"adsgateway-service/internal/config"
	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/pkg/apierror"
)

const adwordsScope = "https://www.googleapis.com/auth/adwords"

// HeaderSource assembles the per-request upstream header set: bearer
// token, developer token and, when configured, login-customer-id.
type HeaderSource interface {
	Headers(ctx context.Context) (http.Header, error)
}

// Credentials exchanges the configured refresh token (or service-account
// key) for short-lived bearer tokens. The token source is wrapped in
// oauth2.ReuseTokenSource, so a still-valid token is reused in-process;
// observable behavior is unchanged, every request presents a valid token.
type Credentials struct {
	cfg config.GoogleAdsConfig
	ts  oauth2.TokenSource
}

// NewCredentials validates the configuration and builds the token source.
// Missing mandatory variables surface as a Configuration error.
func NewCredentials(ctx context.Context, cfg config.GoogleAdsConfig) (*Credentials, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var ts oauth2.TokenSource
	switch cfg.AuthType {
	case config.AuthTypeServiceAccount:
		data, err := os.ReadFile(cfg.CredentialsPath)
		if err != nil {
			return nil, apierror.Wrap(apierror.KindConfiguration, "cannot read service account key file", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, adwordsScope)
		if err != nil {
			return nil, apierror.Wrap(apierror.KindConfiguration, "invalid service account key file", err)
		}
		ts = creds.TokenSource
	default:
		oc := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Scopes:       []string{adwordsScope},
			Endpoint:     google.Endpoint,
		}
		ts = oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	}

	return &Credentials{cfg: cfg, ts: oauth2.ReuseTokenSource(nil, ts)}, nil
}

// Headers implements HeaderSource. A failed token exchange is an
// Authentication error carrying the upstream status and body.
func (c *Credentials) Headers(ctx context.Context) (http.Header, error) {
	tok, err := c.ts.Token()
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) && rerr.Response != nil {
			return nil, apierror.
				Wrap(apierror.KindAuthentication, "failed to refresh access token", err).
				WithDetails("upstream_status", rerr.Response.StatusCode).
				WithDetails("upstream_body", string(rerr.Body))
		}
		return nil, apierror.Wrap(apierror.KindAuthentication, "failed to refresh access token", err)
	}

	h := http.Header{}
	h.Set("Authorization", "Bearer "+tok.AccessToken)
	h.Set("developer-token", c.cfg.DeveloperToken)
	h.Set("Content-Type", "application/json")
	if c.cfg.LoginCustomerID != "" {
		h.Set("login-customer-id", ads.NormalizeCustomerID(c.cfg.LoginCustomerID))
	}
	return h, nil
}
