package api

import (
	"net/http"

	"pixelpaw/backend/internal/models"
	"pixelpaw/backend/internal/progression"
	"pixelpaw/backend/internal/service"
	"pixelpaw/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PetHandler exposes the per-pet stats endpoints.
type PetHandler struct {
	pets   *service.PetService
	logger *logger.Logger
}

// NewPetHandler creates a new pet handler
func NewPetHandler(pets *service.PetService, logger *logger.Logger) *PetHandler {
	return &PetHandler{
		pets:   pets,
		logger: logger,
	}
}

// GetStats returns the stored stats snapshot for a pet. Unknown pets
// get the default snapshot rather than a 404.
func (h *PetHandler) GetStats(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pet name is required"})
		return
	}

	c.JSON(http.StatusOK, h.pets.GetStats(name))
}

// UpdateStatsRequest is the POST /pet/:name/stats payload.
type UpdateStatsRequest struct {
	PetType string            `json:"petType"`
	Stats   progression.Stats `json:"stats" binding:"required"`
}

// UpdateStats overwrites the stored snapshot for a pet
func (h *PetHandler) UpdateStats(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Pet name is required"})
		return
	}

	var req UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Error binding JSON for stats update", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.pets.PutStats(name, models.Archetype(req.PetType), req.Stats); err != nil {
		h.logger.Error("Error updating pet stats", "pet", name, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterRoutes registers the pet routes on the given router
func (h *PetHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/pet/:name/stats", h.GetStats)
	r.POST("/pet/:name/stats", h.UpdateStats)
}
