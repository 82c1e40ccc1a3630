package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the response cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

type HealthHandler struct {
	cache Pinger
}

// NewHealthHandler accepts a nil cache when caching is disabled.
func NewHealthHandler(cache Pinger) *HealthHandler {
	return &HealthHandler{cache: cache}
}

func (h *HealthHandler) Register(router gin.IRoutes) {
	router.GET("/health", h.health)
}

// health godoc
// @Summary  Liveness and cache reachability
// @Success  200 {object} healthResponse
// @Router   /health [get]
func (h *HealthHandler) health(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusOK, healthResponse{Status: "no_cache"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.cache.Ping(ctx); err != nil {
		log.Printf("health: cache ping failed: %v", err)
		c.JSON(http.StatusOK, healthResponse{Status: "degraded"})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}
