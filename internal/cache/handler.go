package cache

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Ops is the slice of the cache the admin surface needs.
type Ops interface {
	Evict(ctx context.Context, branch int) error
	Status(ctx context.Context, branch int) (bool, time.Duration, error)
}

// Handler exposes the ops surface over the menu cache. Mounted behind
// the admin auth middleware.
type Handler struct {
	cache Ops
}

func NewHandler(cache Ops) *Handler {
	return &Handler{cache: cache}
}

// --------------------------------------------------
// GET /admin/cache/:branch
// --------------------------------------------------
func (h *Handler) Status(c *gin.Context) {
	var branch int
	if _, err := fmt.Sscanf(c.Param("branch"), "%d", &branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid branch id"})
		return
	}

	cached, ttl, err := h.cache.Status(c.Request.Context(), branch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cache unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":      branch,
		"cached":      cached,
		"ttl_seconds": int(ttl.Seconds()),
	})
}

// --------------------------------------------------
// DELETE /admin/cache/:branch
// --------------------------------------------------
func (h *Handler) Evict(c *gin.Context) {
	var branch int
	if _, err := fmt.Sscanf(c.Param("branch"), "%d", &branch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid branch id"})
		return
	}

	if err := h.cache.Evict(c.Request.Context(), branch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cache unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"branch":  branch,
		"evicted": true,
	})
}
