package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CurrentUser 是会话中携带的身份信息。令牌校验由外部认证服务完成，
// 这里只负责把已经写入会话的字段还原出来。
type CurrentUser struct {
	ID       uint
	Username string
	Role     string
}

// SessionUser extracts the authenticated identity from the session.
// The second return value is false for anonymous requests.
func SessionUser(c *gin.Context) (CurrentUser, bool) {
	session := sessions.Default(c)

	rawID := session.Get("user_id")
	userID, ok := rawID.(uint)
	if !ok || userID == 0 {
		return CurrentUser{}, false
	}

	user := CurrentUser{ID: userID}
	if username, ok := session.Get("username").(string); ok {
		user.Username = username
	}
	if role, ok := session.Get("role").(string); ok {
		user.Role = role
	}
	return user, true
}

// AuthRequired 是一个简单的认证中间件，匿名请求直接 401。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := SessionUser(c); !ok {
			respondError(c, http.StatusUnauthorized, "authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired 在 AuthRequired 之上再要求 admin 角色。
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := SessionUser(c)
		if !ok || user.Role != "admin" {
			respondError(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequestID attaches a stable id to every request for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader("X-Request-ID"))
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Set("request_id", id)
		c.Next()
	}
}
