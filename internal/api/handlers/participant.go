package handlers

import (
	"errors"
	"net/http"

	apperrors "match-tracker-backend/internal/errors"
	"match-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ParticipantHandler handles HTTP requests for participant operations
type ParticipantHandler struct {
	participantService service.ParticipantServiceInterface
	adminRedirectPath  string
}

// NewParticipantHandler creates a new participant handler
func NewParticipantHandler(participantService service.ParticipantServiceInterface, adminRedirectPath string) *ParticipantHandler {
	return &ParticipantHandler{
		participantService: participantService,
		adminRedirectPath:  adminRedirectPath,
	}
}

// CreateParticipant handles POST /participants
// @Summary Create a new participant
// @Description Create a new participant with the provided game name
// @Tags participants
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param participant body service.UpsertParticipantRequest true "Participant data"
// @Success 201 {object} map[string]interface{} "Successfully created participant"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /participants [post]
func (h *ParticipantHandler) CreateParticipant(c *gin.Context) {
	var req service.UpsertParticipantRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	participant, err := h.participantService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "participant": participant})
}

// UpdateParticipant handles PUT /participants/:id
// @Summary Rename a participant
// @Description Update a participant's game name and redirect to the admin listing
// @Tags participants
// @Accept json
// @Accept x-www-form-urlencoded
// @Param id path string true "Participant ID (UUID)"
// @Param participant body service.UpsertParticipantRequest true "Participant data"
// @Success 303 {string} string "Redirect to admin listing"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Participant not found"
// @Security BearerAuth
// @Router /participants/{id} [put]
func (h *ParticipantHandler) UpdateParticipant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant ID"})
		return
	}

	var req service.UpsertParticipantRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.participantService.Update(id, &req); err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusSeeOther, h.adminRedirectPath)
}

// DeleteParticipant handles DELETE /participants/:id
// @Summary Delete a participant
// @Description Delete a participant that is not referenced by any match assignment
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted participant"
// @Failure 400 {object} map[string]interface{} "Invalid participant ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Participant not found"
// @Failure 409 {object} map[string]interface{} "Participant still assigned to matches"
// @Security BearerAuth
// @Router /participants/{id} [delete]
func (h *ParticipantHandler) DeleteParticipant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant ID"})
		return
	}

	if err := h.participantService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetParticipant handles GET /participants/:id
// @Summary Get participant by ID
// @Description Get a specific participant by its UUID
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID (UUID)"
// @Success 200 {object} service.ParticipantResponse "Successfully retrieved participant"
// @Failure 400 {object} map[string]interface{} "Invalid participant ID"
// @Failure 404 {object} map[string]interface{} "Participant not found"
// @Router /participants/{id} [get]
func (h *ParticipantHandler) GetParticipant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid participant ID"})
		return
	}

	participant, err := h.participantService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrParticipantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, participant)
}

// ListParticipants handles GET /participants
// @Summary List all participants
// @Description Get all participants ordered by game name ascending
// @Tags participants
// @Produce json
// @Success 200 {array} service.ParticipantResponse "Successfully retrieved participants"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /participants [get]
func (h *ParticipantHandler) ListParticipants(c *gin.Context) {
	participants, err := h.participantService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, participants)
}
