package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todohome/internal/home"
	"todohome/internal/models"
	"todohome/internal/surface"
)

// Dispatcher runs a decoded action.
type Dispatcher interface {
	Handle(ctx context.Context, a home.Action) error
}

// InstallationStore keeps workspace credentials.
type InstallationStore interface {
	StoreInstallation(ctx context.Context, teamID, enterpriseID string, payload json.RawMessage) (models.Installation, error)
	FetchInstallation(ctx context.Context, teamID string) (models.Installation, error)
}

// Server provides the HTTP transport in front of the home service.
type Server struct {
	engine   *gin.Engine
	home     Dispatcher
	views    *surface.Memory
	installs InstallationStore
	logger   *slog.Logger
}

// New constructs the HTTP server with routes and middleware configured.
func New(dispatcher Dispatcher, views *surface.Memory, installs InstallationStore, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api"))

	srv := &Server{
		engine:   router,
		home:     dispatcher,
		views:    views,
		installs: installs,
		logger:   logger,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)
		api.POST("/actions", s.handleAction)

		users := api.Group("/users/:user")
		{
			users.GET("/home", s.handleGetHome)
			users.GET("/form", s.handleGetForm)
			users.GET("/messages", s.handleGetMessages)
		}

		installs := api.Group("/installations")
		{
			installs.POST("", s.handleStoreInstallation)
			installs.GET(":team", s.handleFetchInstallation)
		}
	}

	s.engine.GET("/slack/oauth_redirect", s.handleOAuthRedirect)
	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
	})
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondSuccess wraps a payload in a JSON envelope for consistency.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
