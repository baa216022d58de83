package googleads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"

	"adsgateway-service/internal/pkg/apierror"
	"adsgateway-service/internal/pkg/retry"
)

// Caller is the outbound surface services depend on. Paths are relative
// to the versioned API root, e.g. "customers/123/campaignBudgets" or
// "customers:listAccessibleCustomers".
type Caller interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

// Options bounds the client's outbound behavior. Endpoint is overridable
// for tests; everything else mirrors AppConfig.
type Options struct {
	Endpoint          string
	APIVersion        string
	Timeout           time.Duration
	Retry             retry.Policy
	RequestsPerSecond float64
	Burst             int
}

// Client is the REST forwarder: fixed per-call timeout, client-side rate
// limiting, bounded exponential-backoff retry on transient upstream
// signals, and taxonomy translation of upstream failures. It holds no
// per-request state and is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	headers HeaderSource
	retry   retry.Policy
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewClient(headers HeaderSource, opts Options, logger *zap.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := opts.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 10
	}
	pol := opts.Retry
	if pol.MaxAttempts == 0 {
		pol = retry.Default()
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(opts.Endpoint, "/") + "/" + opts.APIVersion,
		headers: headers,
		retry:   pol,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return apierror.Wrap(apierror.KindValidation, "cannot encode request payload", err)
		}
	}
	url := c.baseURL + "/" + strings.TrimPrefix(path, "/")

	return c.retry.Do(ctx, func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return apierror.Wrap(apierror.KindUnavailable, "rate limiter wait interrupted", err)
		}
		return c.once(ctx, method, url, payload, out)
	})
}

func (c *Client) once(ctx context.Context, method, url string, payload []byte, out any) error {
	var reqBody *bytes.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return apierror.Wrap(apierror.KindUnavailable, "cannot build upstream request", err)
	}

	headers, err := c.headers.Headers(ctx)
	if err != nil {
		return err
	}
	req.Header = headers

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts and transport failures surface as retryable 503s,
		// never hang past the configured deadline.
		e := apierror.Wrap(apierror.KindUnavailable, "upstream call failed", err)
		e.Retryable = true
		if errors.Is(err, context.Canceled) {
			e.Retryable = false
		}
		return e
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			apiErr := apierror.TranslateUpstream(gerr.Code, gerr.Body)
			c.logger.Warn("upstream error",
				zap.String("method", method),
				zap.String("url", url),
				zap.Int("status", gerr.Code),
				zap.String("kind", string(apiErr.Kind)),
			)
			return apiErr
		}
		return apierror.TranslateUpstream(resp.StatusCode, err.Error())
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierror.Wrap(apierror.KindUpstream, fmt.Sprintf("cannot decode upstream response from %s", url), err)
	}
	return nil
}
