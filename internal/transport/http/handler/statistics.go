package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendtrack/internal/app"
	"spendtrack/internal/transport/http/middleware"
	"spendtrack/internal/transport/http/response"
)

type StatisticsHandler struct {
	statsService *app.StatsService
}

func NewStatisticsHandler(statsService *app.StatsService) *StatisticsHandler {
	return &StatisticsHandler{statsService: statsService}
}

func (h *StatisticsHandler) Summary(c *gin.Context) {
	userID, ok := middleware.SessionUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.statsService.Summary(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Statistics failed")
		return
	}
	c.JSON(http.StatusOK, summary)
}
