// Package server wires the station API routes into an HTTP server.
package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/betaradio/nowplaying/internal/api/handlers"
	"github.com/betaradio/nowplaying/internal/api/middleware"
	"github.com/betaradio/nowplaying/internal/infra/config"
)

// Server serves the station API.
type Server struct {
	cfg        *config.Config
	router     *gin.Engine
	registry   *handlers.Registry
	httpServer *http.Server
}

// New creates the API server with all routes registered.
func New(cfg *config.Config, resolver handlers.OnAirResolver, sampler handlers.ListenerSampler) *Server {
	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		router:   gin.New(),
		registry: handlers.NewRegistry(),
	}

	s.setupMiddleware()
	s.setupRoutes(resolver, sampler)

	s.httpServer = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: s.router,
	}

	return s
}

func (s *Server) setupMiddleware() {
	// CORS configuration. The now-playing widget is embedded on pages the
	// station does not control, so every origin may read.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}

	s.router.Use(middleware.RequestLogger(), gin.Recovery(), cors.New(corsConfig))
}

func (s *Server) setupRoutes(resolver handlers.OnAirResolver, sampler handlers.ListenerSampler) {
	nowPlayingHandler := handlers.NewNowPlayingHandler(resolver)
	listenersHandler := handlers.NewListenersHandler(sampler, s.cfg.PushInterval(), s.registry)

	// Health check
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "nowplaying"})
	})

	s.router.GET("/now-playing", nowPlayingHandler.Get)
	s.router.GET("/listeners", listenersHandler.Stream)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Start runs the server on the configured address, blocking until it exits.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown ends active listener streams and stops the HTTP server.
// Hijacked websocket connections are outside http.Server.Shutdown's reach,
// so the registry cancels them first.
func (s *Server) Shutdown(ctx context.Context) error {
	s.registry.CloseAll()
	return s.httpServer.Shutdown(ctx)
}
