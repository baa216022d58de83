package ideas

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"adsgateway-service/internal/domain/ads"
	"adsgateway-service/internal/pkg/apierror"
	"adsgateway-service/internal/pkg/response"
)

// Defaults match the original service: Mexico / Spanish constants.
const (
	defaultGeo      = "2484"
	defaultLanguage = "1003"
)

// IdeaGenerator is the slice of the keyword-ideas service this handler
// needs.
type IdeaGenerator interface {
	GenerateIdeas(ctx context.Context, query *ads.KeywordIdeasQuery) ([]ads.Idea, error)
}

type IdeasHandler struct {
	ideasService IdeaGenerator
}

func NewIdeasHandler(ideasService IdeaGenerator) *IdeasHandler {
	return &IdeasHandler{ideasService: ideasService}
}

// KeywordIdeas serves GET /keyword-ideas?customer_id&q&geo&lang&limit.
// The q parameter repeats, one seed keyword per occurrence.
func (h *IdeasHandler) KeywordIdeas(c *gin.Context) {
	query := &ads.KeywordIdeasQuery{
		CustomerID: c.Query("customer_id"),
		Seeds:      c.QueryArray("q"),
		Geo:        c.DefaultQuery("geo", defaultGeo),
		Language:   c.DefaultQuery("lang", defaultLanguage),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.Fail(c, apierror.Validation("limit", "limit must be an integer"))
			return
		}
		query.Limit = limit
	}

	result, err := h.ideasService.GenerateIdeas(c.Request.Context(), query)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
