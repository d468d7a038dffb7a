package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adithi-k-max/FSAD-project/internal/app/models/dto"
)

// Pinger reports backing store reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves liveness and readiness probes
type HealthController struct {
	db Pinger
}

// NewHealthController creates a HealthController. db may be nil for the memory driver.
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Ping is a liveness probe, mounted outside /api
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok", Message: "pong"})
}

// Health checks the database when one is configured
// @Summary Health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	if c.db != nil {
		pctx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()
		if err := c.db.Ping(pctx); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Message: "database unreachable"})
			return
		}
	}
	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
