package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/club-officials-api/internal/dto"
	"github.com/noah-isme/club-officials-api/internal/models"
	appErrors "github.com/noah-isme/club-officials-api/pkg/errors"
	"github.com/noah-isme/club-officials-api/pkg/response"
)

type officialsService interface {
	SetAssignment(ctx context.Context, gameID string, slot models.Slot, assignment *models.Assignment, actor *models.JWTClaims) (*models.Game, error)
	Transition(ctx context.Context, gameID string, slot models.Slot, req dto.TransitionRequest, actor *models.JWTClaims) (*models.Game, error)
	Unassign(ctx context.Context, gameID string, slot models.Slot, actor *models.JWTClaims) (*models.Game, error)
}

// OfficialsHandler exposes duty slot editing endpoints.
type OfficialsHandler struct {
	service officialsService
}

// NewOfficialsHandler builds a new handler.
func NewOfficialsHandler(service officialsService) *OfficialsHandler {
	return &OfficialsHandler{service: service}
}

// Set godoc
// @Summary Replace one duty slot of a game
// @Description Writes the slot wholesale; a null assignment clears it. The other slot is left as stored.
// @Tags Officials
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param slot path string true "scorekeeper or clock"
// @Param payload body dto.SetAssignmentRequest true "Slot value"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /games/{id}/officials/{slot} [put]
func (h *OfficialsHandler) Set(c *gin.Context) {
	slot, err := slotFromPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SetAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid assignment payload"))
		return
	}
	if !req.HasAssignment() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "assignment is required; send null to clear the slot"))
		return
	}
	game, err := h.service.SetAssignment(c.Request.Context(), c.Param("id"), slot, req.Assignment.Model(), claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, game)
}

// Transition godoc
// @Summary Advance the confirmation workflow of a slot
// @Tags Officials
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param slot path string true "scorekeeper or clock"
// @Param payload body dto.TransitionRequest true "Transition"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /games/{id}/officials/{slot}/transitions [post]
func (h *OfficialsHandler) Transition(c *gin.Context) {
	slot, err := slotFromPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid transition payload"))
		return
	}
	game, err := h.service.Transition(c.Request.Context(), c.Param("id"), slot, req, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, game)
}

// Unassign godoc
// @Summary Clear a duty slot
// @Tags Officials
// @Produce json
// @Param id path string true "Game ID"
// @Param slot path string true "scorekeeper or clock"
// @Success 200 {object} response.Envelope
// @Router /games/{id}/officials/{slot} [delete]
func (h *OfficialsHandler) Unassign(c *gin.Context) {
	slot, err := slotFromPath(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	game, err := h.service.Unassign(c.Request.Context(), c.Param("id"), slot, claimsFromContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, game)
}
