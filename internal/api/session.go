package api

import (
	"net/http"
	"time"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/progression"
	"pixelpaw/backend/internal/service"
	"pixelpaw/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the interaction endpoints: chat turns, care
// actions, activity completion, quotes and rewards.
type SessionHandler struct {
	session *service.SessionService
	logger  *logger.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session *service.SessionService, logger *logger.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		logger:  logger,
	}
}

// ChatRequest is the POST /chat payload.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	PetType string `json:"petType" binding:"required"`
	PetName string `json:"petName" binding:"required"`
}

// Chat runs one conversational turn with the companion
func (h *SessionHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for chat", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	archetype := models.Archetype(req.PetType)
	if !models.ValidArchetype(archetype) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pet type"})
		return
	}

	resp, err := h.session.Chat(c.Request.Context(), req.Message, archetype, req.PetName)
	if err != nil {
		h.logger.Error("Error processing chat turn", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reply":      resp.Reply,
		"mood":       resp.Mood,
		"actions":    resp.Actions,
		"stats":      resp.Stats,
		"levelUp":    resp.Outcome.LeveledUp,
		"newRewards": resp.NewRewards,
	})
}

// CareRequest is the POST /pet/care payload.
type CareRequest struct {
	Action  string `json:"action" binding:"required"`
	PetType string `json:"petType" binding:"required"`
	PetName string `json:"petName" binding:"required"`
}

// Care applies a feed, play or sleep action
func (h *SessionHandler) Care(c *gin.Context) {
	var req CareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for care action", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	action := progression.Interaction(req.Action)
	if !progression.ValidCareAction(action) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown care action"})
		return
	}

	archetype := models.Archetype(req.PetType)
	if !models.ValidArchetype(archetype) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pet type"})
		return
	}

	resp, err := h.session.Care(c.Request.Context(), action, archetype, req.PetName)
	if err != nil {
		h.logger.Error("Error applying care action", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply care action"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    resp.Reply,
		"stats":      resp.Stats,
		"levelUp":    resp.Outcome.LeveledUp,
		"newRewards": resp.NewRewards,
	})
}

// MeditationRequest is the POST /meditation/complete payload.
type MeditationRequest struct {
	PetType         string `json:"petType" binding:"required"`
	PetName         string `json:"petName" binding:"required"`
	DurationSeconds int    `json:"durationSeconds"`
}

// CompleteMeditation records a finished session and grants XP
func (h *SessionHandler) CompleteMeditation(c *gin.Context) {
	var req MeditationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for meditation", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	archetype := models.Archetype(req.PetType)
	if !models.ValidArchetype(archetype) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pet type"})
		return
	}

	duration := time.Duration(req.DurationSeconds) * time.Second
	resp, err := h.session.CompleteMeditation(c.Request.Context(), archetype, req.PetName, duration)
	if err != nil {
		h.logger.Error("Error completing meditation", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete meditation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":      resp.Stats,
		"levelUp":    resp.Outcome.LeveledUp,
		"newRewards": resp.NewRewards,
	})
}

// DailyQuote returns the quote for the current day
func (h *SessionHandler) DailyQuote(c *gin.Context) {
	quote, err := h.session.DailyQuote(c.Request.Context())
	if err != nil {
		h.logger.Error("Error loading daily quote", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// Rewards returns the full reward set with earned state
func (h *SessionHandler) Rewards(c *gin.Context) {
	set, err := h.session.Rewards(c.Request.Context())
	if err != nil {
		h.logger.Error("Error evaluating rewards", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load rewards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": set})
}

// Messages returns the working conversation transcript
func (h *SessionHandler) Messages(c *gin.Context) {
	msgs, err := h.session.Transcript(c.Request.Context())
	if err != nil {
		h.logger.Error("Error loading transcript", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// RegisterRoutes registers the session routes on the given router
func (h *SessionHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/chat", h.Chat)
	r.POST("/pet/care", h.Care)
	r.POST("/meditation/complete", h.CompleteMeditation)
	r.GET("/quote", h.DailyQuote)
	r.GET("/rewards", h.Rewards)
	r.GET("/messages", h.Messages)
}
