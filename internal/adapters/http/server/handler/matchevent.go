package handler

import (
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/internal/app/models"
	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware"
	"github.com/gin-gonic/gin"
)

type MatchEventHandler struct {
	matchEventService MatchEventService
}

func NewMatchEventHandler(matchEventService MatchEventService) *MatchEventHandler {
	return &MatchEventHandler{matchEventService: matchEventService}
}

func (h *MatchEventHandler) List(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	events, err := h.matchEventService.ListEvents(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, eventsFromDomain(*events))
}

func (h *MatchEventHandler) RecordGoal(c *gin.Context) {
	access, ok := bindAccess(c)
	if !ok {
		return
	}

	var params RecordGoalRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	recorded, err := h.matchEventService.RecordGoal(c.Request.Context(), middleware.CallerFrom(c), access, params.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, RecordedGoalResponse{
		Goal:  goalFromDomain(recorded.Goal),
		Score: scoreFromDomain(recorded.Score),
	})
}

func (h *MatchEventHandler) DeleteGoal(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	score, err := h.matchEventService.DeleteGoal(c.Request.Context(), middleware.CallerFrom(c), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scoreFromDomain(*score))
}

func (h *MatchEventHandler) RecordCard(c *gin.Context) {
	access, ok := bindAccess(c)
	if !ok {
		return
	}

	var params RecordCardRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	card, err := h.matchEventService.RecordCard(c.Request.Context(), middleware.CallerFrom(c), access, params.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cardFromDomain(*card))
}

func (h *MatchEventHandler) DeleteCard(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.matchEventService.DeleteCard(c.Request.Context(), middleware.CallerFrom(c), uri.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MatchEventHandler) RecordSubstitution(c *gin.Context) {
	access, ok := bindAccess(c)
	if !ok {
		return
	}

	var params RecordSubstitutionRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	substitution, err := h.matchEventService.RecordSubstitution(c.Request.Context(), middleware.CallerFrom(c), access, params.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, substitutionFromDomain(*substitution))
}

func (h *MatchEventHandler) DeleteSubstitution(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.matchEventService.DeleteSubstitution(c.Request.Context(), middleware.CallerFrom(c), uri.ID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindAccess picks the direct path (/fixtures/:id) or the token path (/live/:token), whichever the route carries.
func bindAccess(c *gin.Context) (models.MatchAccess, bool) {
	if token := c.Param("token"); token != "" {
		return models.MatchAccess{Token: token}, true
	}

	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return models.MatchAccess{}, false
	}

	return models.MatchAccess{FixtureID: uri.ID}, true
}
