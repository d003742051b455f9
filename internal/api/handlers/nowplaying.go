package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/betaradio/nowplaying/internal/domain/onair"
)

// OnAirResolver yields the current on-air state.
type OnAirResolver interface {
	Resolve(ctx context.Context) onair.Result
}

// NowPlayingHandler handles now-playing requests.
type NowPlayingHandler struct {
	resolver OnAirResolver
}

// NewNowPlayingHandler creates a new NowPlayingHandler instance.
func NewNowPlayingHandler(resolver OnAirResolver) *NowPlayingHandler {
	return &NowPlayingHandler{resolver: resolver}
}

// Get runs one resolution and returns the result as JSON. Both variants are
// served with status 200; a degraded upstream is reported in the body.
func (h *NowPlayingHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.resolver.Resolve(c.Request.Context()))
}
