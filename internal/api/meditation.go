package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/pkg/logger"
)

// MeditationHistory lists recently completed sessions, newest first.
type MeditationHistory interface {
	Recent(limit int) ([]models.MeditationSession, error)
}

const defaultHistoryLimit = 20

// MeditationHandler exposes the meditation history view.
type MeditationHandler struct {
	history MeditationHistory
	logger  *logger.Logger
}

// NewMeditationHandler creates a new meditation handler
func NewMeditationHandler(history MeditationHistory, logger *logger.Logger) *MeditationHandler {
	return &MeditationHandler{
		history: history,
		logger:  logger,
	}
}

// History returns the latest completed sessions
func (h *MeditationHandler) History(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	sessions, err := h.history.Recent(limit)
	if err != nil {
		h.logger.LogError(err, "failed to list meditation sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load meditation history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// RegisterRoutes registers the meditation routes on the given router
func (h *MeditationHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/meditation/history", h.History)
}
