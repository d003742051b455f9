package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	zlog "github.com/rs/zerolog/log"

	"github.com/betaradio/nowplaying/internal/domain/stats"
)

// ListenerSampler produces listener-count samples.
type ListenerSampler interface {
	Tick() stats.ListenerStats
}

// The widget is embedded on third-party pages; any origin may subscribe.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ListenersHandler streams listener-count samples over a websocket.
type ListenersHandler struct {
	sampler  ListenerSampler
	interval time.Duration
	registry *Registry
}

// NewListenersHandler creates a new ListenersHandler instance.
func NewListenersHandler(sampler ListenerSampler, interval time.Duration, registry *Registry) *ListenersHandler {
	return &ListenersHandler{
		sampler:  sampler,
		interval: interval,
		registry: registry,
	}
}

// Stream upgrades the connection and pushes one sample immediately, then one
// per interval, until the client disconnects or the registry cancels the
// stream during shutdown.
func (h *ListenersHandler) Stream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Warn().Msgf("websocket upgrade failed: client=%s err=%v", c.ClientIP(), err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	id := h.registry.Add(cancel)
	defer h.registry.Remove(id)
	streamsActive.Inc()
	defer streamsActive.Dec()
	zlog.Info().Msgf("listener stream opened: id=%s client=%s active=%d", id, c.ClientIP(), h.registry.Count())

	// Drain reads so close frames from the client are processed. A read
	// error means the peer is gone.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		if err := conn.WriteJSON(h.sampler.Tick()); err != nil {
			zlog.Info().Msgf("listener stream closed: id=%s err=%v", id, err)
			return
		}
		samplesSent.Inc()

		select {
		case <-ctx.Done():
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			zlog.Info().Msgf("listener stream closed: id=%s", id)
			return
		case <-time.After(h.interval):
		}
	}
}
