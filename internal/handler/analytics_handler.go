package handler

import (
	"errors"
	"net/http"

	"github.com/blogpulse/internal/service"
	"github.com/gin-gonic/gin"
)

// Engagement returns the daily engagement series for the dashboard chart.
func (a *API) Engagement(c *gin.Context) {
	start, err := parseDateQuery(c, "start_date")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	end, err := parseDateQuery(c, "end_date")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	samples, err := a.engagement.Series(start, end)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			respondError(c, http.StatusBadRequest, "start_date must not be after end_date")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to fetch engagement data")
		return
	}

	c.JSON(http.StatusOK, gin.H{"engagement": samples})
}

// Overview returns site-wide counters and top blogs by views.
func (a *API) Overview(c *gin.Context) {
	overview, err := a.stats.Overview(parsePositiveInt(c.DefaultQuery("limit", "5"), 5))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch overview")
		return
	}

	c.JSON(http.StatusOK, overview)
}

// BlogReactionDetails returns the per-user reaction rows of one blog.
func (a *API) BlogReactionDetails(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	details, err := a.reactions.Details(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch reaction details")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reactions": details})
}
