package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	appName   string
	env       string
	startedAt time.Time
}

func NewHealthHandler(appName, env string, startedAt time.Time) *HealthHandler {
	return &HealthHandler{appName: appName, env: env, startedAt: startedAt}
}

func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"app":            h.appName,
		"env":            h.env,
		"uptime_seconds": int(time.Since(h.startedAt).Seconds()),
	})
}
