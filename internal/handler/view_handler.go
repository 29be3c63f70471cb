package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/blogpulse/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type viewRequest struct {
	BlogID uint `json:"blog_id"`
}

const visitorCookieName = "blogpulse_visitor"

// visitorAddress 返回匿名访客的去重键。优先使用客户端 IP；
// 取不到 IP 时退回访客 Cookie 里的 uuid，必要时现场签发一个，
// 保证匿名浏览总能解析出一个稳定的键。
func visitorAddress(c *gin.Context) string {
	if ip := strings.TrimSpace(c.ClientIP()); ip != "" {
		return ip
	}

	if id, err := c.Cookie(visitorCookieName); err == nil {
		if id = strings.TrimSpace(id); id != "" {
			return id
		}
	}

	id := uuid.NewString()
	c.SetCookie(visitorCookieName, id, 3600*24*365, "/", "", false, true)
	return id
}

// RecordView registers one page view for the requesting visitor.
// Works for both authenticated and anonymous requests; repeats inside
// the dedup window are successful no-ops.
func (a *API) RecordView(c *gin.Context) {
	var req viewRequest
	if !bindJSON(c, &req, "blog_id is required") {
		return
	}
	if req.BlogID == 0 {
		respondError(c, http.StatusBadRequest, "blog_id is required")
		return
	}

	var userID uint
	if user, ok := SessionUser(c); ok {
		userID = user.ID
	}

	key := service.ResolveViewerKey(userID, visitorAddress(c))

	if err := a.views.RecordView(req.BlogID, key, time.Now().UTC()); err != nil {
		switch {
		case errors.Is(err, service.ErrBlogNotFound):
			respondError(c, http.StatusBadRequest, "blog is not active")
		case errors.Is(err, service.ErrInvalidViewer):
			respondError(c, http.StatusBadRequest, "could not resolve viewer")
		default:
			respondError(c, http.StatusInternalServerError, "failed to record view")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "View recorded"})
}
