package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todohome/internal/models"
)

const installedMessage = "✅ TodoApp installed successfully. You can close this window."

type installationRequest struct {
	TeamID       string          `json:"team_id"`
	EnterpriseID string          `json:"enterprise_id"`
	Installation json.RawMessage `json:"installation"`
}

// handleStoreInstallation saves the credentials of a workspace.
func (s *Server) handleStoreInstallation(c *gin.Context) {
	var req installationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	inst, err := s.installs.StoreInstallation(c.Request.Context(), req.TeamID, req.EnterpriseID, req.Installation)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"installation": inst})
}

// handleFetchInstallation returns the credentials of a workspace.
func (s *Server) handleFetchInstallation(c *gin.Context) {
	inst, err := s.installs.FetchInstallation(c.Request.Context(), c.Param("team"))
	if errors.Is(err, models.ErrInstallationNotFound) {
		s.respondError(c, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"installation": inst})
}

// handleOAuthRedirect is the landing page after a workspace installs the app.
func (s *Server) handleOAuthRedirect(c *gin.Context) {
	c.String(http.StatusOK, installedMessage)
}
