package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"demo-api/internal/domains/stats"
	"demo-api/internal/shared/response"
)

type StatsHandler struct {
	service stats.Service
}

func NewStatsHandler(svc stats.Service) *StatsHandler {
	return &StatsHandler{service: svc}
}

// Get handles GET /stats
func (h *StatsHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Statistics retrieved successfully", result)
}
