package recommend

import (
	"errors"
	"net/http"

	"github.com/hasnainyaqub/Microservice-App/internal/llm"
	"github.com/hasnainyaqub/Microservice-App/internal/menu"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/recommend
// --------------------------------------------------
func (h *Handler) Recommend(c *gin.Context) {
	var payload InputPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if payload.Question.Peoples < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "peoples must be a positive integer"})
		return
	}

	ctx := c.Request.Context()

	if h.service.Mode() == ModeLLM {
		resp, err := h.service.RecommendLLM(ctx, payload.Branch, payload.Question)
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	rec, err := h.service.Recommend(ctx, payload.Branch, payload.Question)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// writeError maps the named failures: store trouble is a generic 500,
// everything about the upstream model is a 502 carrying the detail.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, llm.ErrUpstream), errors.Is(err, llm.ErrBadResponse):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case errors.Is(err, menu.ErrStoreUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "menu store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
