package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"demo-api/internal/domains/search"
	"demo-api/internal/shared/query"
	"demo-api/internal/shared/response"
)

type SearchHandler struct {
	service search.Service
}

func NewSearchHandler(svc search.Service) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search handles GET /search?q=&page=&limit=
func (h *SearchHandler) Search(c *gin.Context) {
	values := c.Request.URL.Query()
	q := strings.TrimSpace(values.Get("q"))
	if q == "" {
		response.Success(c, http.StatusOK, "Search query is required", []search.Hit{})
		return
	}

	hits, meta, err := h.service.Search(c.Request.Context(), q, query.ParsePagination(values))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.SuccessWithPagination(c, fmt.Sprintf("Found %d results for \"%s\"", meta.Total, q), hits, meta)
}
