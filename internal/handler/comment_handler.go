package handler

import (
	"errors"
	"net/http"

	"github.com/blogpulse/internal/service"
	"github.com/gin-gonic/gin"
)

type commentRequest struct {
	Content string `json:"content"`
}

// ListComments returns all comments of a blog, newest first.
func (a *API) ListComments(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comments, err := a.comments.ListForBlog(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment adds a comment by the authenticated user.
func (a *API) CreateComment(c *gin.Context) {
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

	var req commentRequest
	if !bindJSON(c, &req, "content is required") {
		return
	}

	comment, err := a.comments.Add(id, user.ID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment):
			respondError(c, http.StatusBadRequest, "content is required")
		case errors.Is(err, service.ErrBlogNotFound):
			respondError(c, http.StatusBadRequest, "blog not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to add comment")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": gin.H{
			"id":         comment.ID,
			"blog_id":    comment.BlogID,
			"user_id":    comment.UserID,
			"content":    comment.Content,
			"created_at": comment.CreatedAt,
		},
	})
}
