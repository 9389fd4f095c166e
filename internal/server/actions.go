package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todohome/internal/home"
	"todohome/internal/models"
)

// handleAction acknowledges a user action and then runs it. Only events that
// cannot be mapped to an action are answered with an error.
func (s *Server) handleAction(c *gin.Context) {
	var ev home.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	action, err := home.Decode(ev)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"ok": true})
	c.Writer.Flush()

	// The ack is already on the wire; a client hanging up must not abort the render.
	ctx := context.WithoutCancel(c.Request.Context())
	if err := s.home.Handle(ctx, action); err != nil {
		s.logActionError(action, err)
	}
}

func (s *Server) logActionError(a home.Action, err error) {
	attrs := []any{
		slog.String("kind", string(a.Kind())),
		slog.String("user", a.Actor()),
		slog.String("error", err.Error()),
	}
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrInvalidFilter):
		s.logger.Info("action rejected", attrs...)
	default:
		s.logger.Error("action failed", attrs...)
	}
}
