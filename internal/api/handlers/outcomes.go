package handlers

import (
	"context"
	"net/http"
	"strconv"

	"CheckoutSDK/internal/domain/checkout"
	"CheckoutSDK/internal/external/opensearch"

	"github.com/gin-gonic/gin"
)

type OutcomeSearcher interface {
	Search(ctx context.Context, q opensearch.OutcomeQuery) ([]checkout.SessionOutcome, error)
}

// OutcomeHandler serves the outcome audit index.
type OutcomeHandler struct {
	searcher OutcomeSearcher
}

func NewOutcomeHandler(searcher OutcomeSearcher) *OutcomeHandler {
	return &OutcomeHandler{searcher: searcher}
}

// List handles GET /outcomes?outlet_id=&kind=&size=. kind may repeat.
func (h *OutcomeHandler) List(c *gin.Context) {
	q := opensearch.OutcomeQuery{OutletID: c.Query("outlet_id")}
	for _, k := range c.QueryArray("kind") {
		q.Kinds = append(q.Kinds, checkout.OutcomeKind(k))
	}
	if raw := c.Query("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "size must be a positive integer"})
			return
		}
		q.Size = size
	}

	outcomes, err := h.searcher.Search(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": outcomes})
}
