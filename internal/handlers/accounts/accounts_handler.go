package accounts

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"adsgateway-service/internal/pkg/response"
)

// AccountLister is the slice of the accounts service this handler needs.
type AccountLister interface {
	ListAccessible(ctx context.Context) (string, error)
}

type AccountsHandler struct {
	accountsService AccountLister
}

func NewAccountsHandler(accountsService AccountLister) *AccountsHandler {
	return &AccountsHandler{accountsService: accountsService}
}

// ListAccounts serves GET /list-accounts as a plain-text account listing.
func (h *AccountsHandler) ListAccounts(c *gin.Context) {
	listing, err := h.accountsService.ListAccessible(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Text(c, http.StatusOK, listing)
}
