package apierror

import (
	"net/http"
	"strings"
)

// upstreamCode maps a Google Ads error-code name to its taxonomy kind.
// Matching is by substring against the raw error body, which is how the
// upstream surfaces code names inside nested GoogleAdsFailure payloads.
type upstreamCode struct {
	name      string
	kind      Kind
	message   string
	retryable bool
}

var upstreamCodes = []upstreamCode{
	{"INVALID_CUSTOMER_ID", KindValidation, "invalid customer ID provided", false},
	{"CUSTOMER_NOT_FOUND", KindNotFound, "customer account not found", false},
	{"INSUFFICIENT_PERMISSIONS", KindAuthorization, "insufficient permissions to access this resource", false},
	{"PERMISSION_DENIED", KindAuthorization, "permission denied", false},
	{"UNAUTHENTICATED", KindAuthentication, "authentication failed, check your credentials", false},
	{"QUOTA_EXCEEDED", KindRateLimit, "API quota exceeded, try again later", true},
	{"RATE_EXCEEDED", KindRateLimit, "request rate exceeded, slow down", true},
	{"INTERNAL_ERROR", KindUnavailable, "Google Ads API internal error", true},
	{"DEADLINE_EXCEEDED", KindUnavailable, "upstream request timed out", true},
	{"UNAVAILABLE", KindUnavailable, "Google Ads API is currently unavailable", true},
	{"NOT_FOUND", KindNotFound, "resource not found", false},
}

// TranslateUpstream converts a non-2xx upstream response into a taxonomy
// error. Code names in the body take precedence over the HTTP status; the
// status is only a fallback for bodies without a recognizable name.
func TranslateUpstream(status int, body string) *Error {
	for _, c := range upstreamCodes {
		if strings.Contains(body, c.name) {
			return &Error{
				Kind:      c.kind,
				Message:   c.message,
				Retryable: c.retryable,
				Details: map[string]any{
					"google_ads_error_code": c.name,
					"upstream_status":       status,
				},
			}
		}
	}

	switch status {
	case http.StatusUnauthorized:
		return upstreamFallback(KindAuthentication, "upstream rejected credentials", status, body, false)
	case http.StatusForbidden:
		return upstreamFallback(KindAuthorization, "upstream denied access", status, body, false)
	case http.StatusNotFound:
		return upstreamFallback(KindNotFound, "upstream resource not found", status, body, false)
	case http.StatusTooManyRequests:
		return upstreamFallback(KindRateLimit, "upstream rate limit hit", status, body, true)
	}
	if status >= 500 {
		return upstreamFallback(KindUnavailable, "upstream transient failure", status, body, true)
	}
	return upstreamFallback(KindUpstream, truncate(body, 512), status, body, false)
}

func upstreamFallback(kind Kind, message string, status int, body string, retryable bool) *Error {
	return &Error{
		Kind:      kind,
		Message:   message,
		Retryable: retryable,
		Details: map[string]any{
			"upstream_status": status,
			"upstream_body":   truncate(body, 2048),
		},
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
