package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"adsgateway-service/internal/pkg/apierror"
)

// ContextRequestID is the gin context key the request-ID middleware sets.
const ContextRequestID = "request_id"

// ErrorBody is the standard error response format. Every error carries the
// correlation ID so callers can reconcile with the access log.
type ErrorBody struct {
	Status    string         `json:"status"`
	Message   string         `json:"message"`
	ErrorCode string         `json:"error_code"`
	RequestID string         `json:"request_id"`
	Timestamp string         `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

// JSON sends a successful JSON response.
func JSON(c *gin.Context, status int, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, data)
}

// Text sends a plain-text response.
func Text(c *gin.Context, status int, body string) {
	c.String(status, body)
}

// Fail maps err onto the taxonomy and sends the standardized error body.
func Fail(c *gin.Context, err error) {
	apiErr := apierror.As(err)
	c.Abort()
	c.JSON(apiErr.HTTPStatus(), ErrorBody{
		Status:    "error",
		Message:   apiErr.Message,
		ErrorCode: string(apiErr.Kind),
		RequestID: RequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Details:   apiErr.Details,
	})
}

// RequestID returns the correlation ID the middleware attached, or empty.
func RequestID(c *gin.Context) string {
	if v, ok := c.Get(ContextRequestID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
