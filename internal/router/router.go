package router

import (
	"github.com/blogpulse/internal/handler"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件，身份信息由外部认证流程写入会话
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("blogpulse_session", store))
	r.Use(handler.RequestID())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 公开接口
	public := r.Group("/api")
	{
		public.GET("/blogs", api.ListBlogs)
		public.GET("/blogs/latest", api.LatestBlogs)
		public.GET("/blogs/:id", api.ShowBlog)
		public.GET("/blogs/:id/comments", api.ListComments)
		public.GET("/blogs/:id/reactions", api.ReactionSummary)

		// 浏览记录对匿名访客同样开放，登录与否只影响去重键
		public.POST("/views", api.RecordView)

		// 需要认证的互动接口
		auth := public.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.POST("/blogs/:id/comments", api.CreateComment)
			auth.POST("/blogs/:id/reactions", api.ToggleReaction)
			auth.GET("/blogs/:id/reactions/me", api.MyReaction)
		}
	}

	// 后台分析接口
	admin := r.Group("/api/admin")
	admin.Use(handler.AuthRequired(), handler.AdminRequired())
	{
		admin.GET("/engagement", api.Engagement)
		admin.GET("/overview", api.Overview)
		admin.GET("/blogs/:id/reactions", api.BlogReactionDetails)
	}

	return r
}
