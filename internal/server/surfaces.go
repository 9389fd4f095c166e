package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todohome/internal/blocks"
)

func wantBlocks(c *gin.Context) bool {
	return c.Query("format") == "blocks"
}

// handleGetHome returns the last home view delivered to a user.
func (s *Server) handleGetHome(c *gin.Context) {
	h, ok := s.views.Home(c.Param("user"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no home view published"})
		return
	}
	if wantBlocks(c) {
		respondSuccess(c, http.StatusOK, gin.H{"view": blocks.Home(h)})
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"home": h})
}

// handleGetForm returns the form currently open for a user.
func (s *Server) handleGetForm(c *gin.Context) {
	f, ok := s.views.Form(c.Param("user"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no form open"})
		return
	}
	if wantBlocks(c) {
		respondSuccess(c, http.StatusOK, gin.H{"view": blocks.Form(f)})
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"form": f})
}

// handleGetMessages lists direct messages sent to a user.
func (s *Server) handleGetMessages(c *gin.Context) {
	msgs := s.views.Messages(c.Param("user"))
	if msgs == nil {
		msgs = []string{}
	}
	respondSuccess(c, http.StatusOK, gin.H{"messages": msgs})
}
