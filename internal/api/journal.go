package api

import (
	"net/http"
	"time"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/service"
	"pixelpaw/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// JournalHandler exposes the journal endpoints. Writing an entry also
// completes the journaling activity on the companion session so the
// XP grant and reward evaluation happen in the same request.
type JournalHandler struct {
	journal *service.JournalService
	session *service.SessionService
	logger  *logger.Logger
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journal *service.JournalService, session *service.SessionService, logger *logger.Logger) *JournalHandler {
	return &JournalHandler{
		journal: journal,
		session: session,
		logger:  logger,
	}
}

// CreateEntryRequest is the POST /journal payload.
type CreateEntryRequest struct {
	Content string   `json:"content" binding:"required"`
	Mood    string   `json:"mood"`
	Tags    []string `json:"tags"`
	PetType string   `json:"petType"`
	PetName string   `json:"petName"`
}

// Create stores a new journal entry
func (h *JournalHandler) Create(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for journal entry", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.journal.Append(req.Content, req.Mood, time.Now().UTC(), req.Tags)
	if err != nil {
		h.logger.Error("Error saving journal entry", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save journal entry"})
		return
	}

	response := gin.H{
		"id":      entry.ExternalID,
		"success": true,
	}

	// Grant the journaling XP when the caller identifies a companion
	archetype := models.Archetype(req.PetType)
	if req.PetName != "" && models.ValidArchetype(archetype) {
		turn, err := h.session.CompleteJournal(c.Request.Context(), archetype, req.PetName)
		if err != nil {
			h.logger.Error("Error completing journal activity", "error", err.Error())
		} else {
			response["stats"] = turn.Stats
			response["levelUp"] = turn.Outcome.LeveledUp
			response["newRewards"] = turn.NewRewards
		}
	}

	c.JSON(http.StatusCreated, response)
}

// List returns the most recent entries, newest first
func (h *JournalHandler) List(c *gin.Context) {
	entries, err := h.journal.List()
	if err != nil {
		h.logger.Error("Error listing journal entries", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load journal entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// RegisterRoutes registers the journal routes on the given router
func (h *JournalHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/journal", h.Create)
	r.GET("/journal", h.List)
}
