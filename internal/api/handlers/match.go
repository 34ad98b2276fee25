package handlers

import (
	"errors"
	"net/http"

	"match-tracker-backend/internal/auth"
	apperrors "match-tracker-backend/internal/errors"
	"match-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchHandler handles HTTP requests for match operations
type MatchHandler struct {
	matchService      service.MatchServiceInterface
	adminRedirectPath string
}

// NewMatchHandler creates a new match handler
func NewMatchHandler(matchService service.MatchServiceInterface, adminRedirectPath string) *MatchHandler {
	return &MatchHandler{
		matchService:      matchService,
		adminRedirectPath: adminRedirectPath,
	}
}

// CreateMatch handles POST /matches
// @Summary Create a new match
// @Description Create a match plus its ten side/role assignments in one transaction. The creator name is taken from the session, not the payload.
// @Tags matches
// @Accept json
// @Accept x-www-form-urlencoded
// @Param match body service.CreateMatchRequest true "Match data with ten assignment slots"
// @Success 303 {string} string "Redirect to admin listing"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /matches [post]
func (h *MatchHandler) CreateMatch(c *gin.Context) {
	var req service.CreateMatchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, ok := auth.GetUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if _, err := h.matchService.Create(&req, username); err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Redirect(http.StatusSeeOther, h.adminRedirectPath)
}

// UpdateMatch handles PUT /matches/:id
// @Summary Update a match
// @Description Update the scalar fields of a match. Assignments are immutable after creation.
// @Tags matches
// @Accept json
// @Accept x-www-form-urlencoded
// @Param id path string true "Match ID (UUID)"
// @Param match body service.UpdateMatchRequest true "Match data"
// @Success 303 {string} string "Redirect to admin listing"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [put]
func (h *MatchHandler) UpdateMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	var req service.UpdateMatchRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.matchService.Update(id, &req); err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
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

// DeleteMatch handles DELETE /matches/:id
// @Summary Delete a match
// @Description Delete a match. Its assignments are removed by the database cascade.
// @Tags matches
// @Param id path string true "Match ID (UUID)"
// @Success 204 {string} string "Match deleted"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Security BearerAuth
// @Router /matches/{id} [delete]
func (h *MatchHandler) DeleteMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	if err := h.matchService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMatch handles GET /matches/:id
// @Summary Get match by ID
// @Description Get a match with its assignments and their participants
// @Tags matches
// @Produce json
// @Param id path string true "Match ID (UUID)"
// @Success 200 {object} service.MatchResponse "Successfully retrieved match"
// @Failure 400 {object} map[string]interface{} "Invalid match ID"
// @Failure 404 {object} map[string]interface{} "Match not found"
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid match ID"})
		return
	}

	match, err := h.matchService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, match)
}

// ListMatches handles GET /matches
// @Summary List all matches
// @Description Get all matches with assignments and participants, ordered by schedule timestamp descending (unscheduled last)
// @Tags matches
// @Produce json
// @Success 200 {array} service.MatchResponse "Successfully retrieved matches"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /matches [get]
func (h *MatchHandler) ListMatches(c *gin.Context) {
	matches, err := h.matchService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}
