package accounts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"adsgateway-service/internal/pkg/apierror"
)

type fakeLister struct {
	listing string
	err     error
}

func (f *fakeLister) ListAccessible(ctx context.Context) (string, error) {
	return f.listing, f.err
}

func get(svc AccountLister) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/list-accounts", NewAccountsHandler(svc).ListAccounts)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/list-accounts", nil))
	return w
}

func TestListAccountsHandler(t *testing.T) {
	listing := "Accessible Google Ads Accounts:\n" +
		"--------------------------------------------------\n" +
		"Account ID: 9873186703"
	w := get(&fakeLister{listing: listing})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, listing, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestListAccountsHandlerUpstreamFailure(t *testing.T) {
	w := get(&fakeLister{err: apierror.New(apierror.KindAuthentication, "authentication failed, check your credentials")})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
