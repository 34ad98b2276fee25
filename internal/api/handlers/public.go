package handlers

import (
	"net/http"

	"match-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated read endpoints
type PublicHandler struct {
	matchService service.MatchServiceInterface
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(matchService service.MatchServiceInterface) *PublicHandler {
	return &PublicHandler{matchService: matchService}
}

// ListMatchesRaw handles GET /api/matches.
// Returns the raw match rows as a JSON array: no joins, no ordering
// guarantee. Kept separate from the v1 listing on purpose.
// @Summary List raw match rows
// @Description Get all match rows without assignments or ordering guarantees
// @Tags public
// @Produce json
// @Success 200 {array} models.Match "All match rows"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/matches [get]
func (h *PublicHandler) ListMatchesRaw(c *gin.Context) {
	matches, err := h.matchService.ListBare()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}
