package handler

import (
	"errors"
	"net/http"

	"github.com/blogpulse/internal/service"
	"github.com/gin-gonic/gin"
)

type reactionRequest struct {
	ReactionType string `json:"reaction_type"`
}

// ToggleReaction applies one click of the reaction state machine.
func (a *API) ToggleReaction(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := SessionUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req reactionRequest
	if !bindJSON(c, &req, "reaction_type is required") {
		return
	}

	status, err := a.reactions.Toggle(user.ID, id, req.ReactionType)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReaction) {
			respondError(c, http.StatusBadRequest, "reaction_type is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to toggle reaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": status})
}

// ReactionSummary returns per-type reaction counts for a blog.
func (a *API) ReactionSummary(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := a.reactions.Summary(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch reactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// MyReaction returns the authenticated user's current reaction, if any.
func (a *API) MyReaction(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, ok := SessionUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	reaction, err := a.reactions.UserReaction(user.ID, id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch reaction")
		return
	}

	if reaction == "" {
		c.JSON(http.StatusOK, gin.H{"reaction": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reaction": reaction})
}
