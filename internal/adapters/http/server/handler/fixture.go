package handler

import (
	"net/http"

	"github.com/huhyoujung/footballlog-sub002/internal/infra/http/server/middleware"
	"github.com/gin-gonic/gin"
)

type FixtureHandler struct {
	challengeService ChallengeService
}

func NewFixtureHandler(challengeService ChallengeService) *FixtureHandler {
	return &FixtureHandler{challengeService: challengeService}
}

func (h *FixtureHandler) Get(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	fixture, err := h.challengeService.Get(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fixtureFromDomain(*fixture))
}

func (h *FixtureHandler) SendChallenge(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	var params SendChallengeRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	pair, err := h.challengeService.Send(c.Request.Context(), middleware.CallerFrom(c), params.ToDomain(uri.ID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pairFromDomain(*pair))
}

func (h *FixtureHandler) AcceptChallenge(c *gin.Context) {
	var uri TokenParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	pair, err := h.challengeService.Accept(c.Request.Context(), middleware.CallerFrom(c), uri.Token)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairFromDomain(*pair))
}

func (h *FixtureHandler) RejectChallenge(c *gin.Context) {
	var uri TokenParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	var params RejectChallengeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&params); err != nil {
			respondBadRequest(c, err)
			return
		}
	}

	fixture, err := h.challengeService.Reject(c.Request.Context(), middleware.CallerFrom(c), params.ToDomain(uri.Token))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fixtureFromDomain(*fixture))
}

func (h *FixtureHandler) ChangeStatus(c *gin.Context) {
	var uri IDParam
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	var params ChangeStatusRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		respondBadRequest(c, err)
		return
	}

	pair, err := h.challengeService.ChangeStatus(c.Request.Context(), middleware.CallerFrom(c), uri.ID, params.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pairFromDomain(*pair))
}
