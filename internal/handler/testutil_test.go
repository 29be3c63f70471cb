package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/blogpulse/internal/db"
	"github.com/blogpulse/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Blog{}, &db.Comment{}, &db.Reaction{}, &db.ViewEvent{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

// newTestRouter 在测试内重建与生产相同形状的路由。
// 额外挂一个 /test/login 路由，用来模拟外部认证流程写入会话。
func newTestRouter(api *API) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(sessions.Sessions("blogpulse_session", cookie.NewStore([]byte("test-secret"))))

	r.POST("/test/login", func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)
		session.Set("user_id", uint(userID))
		session.Set("username", c.Query("username"))
		session.Set("role", c.DefaultQuery("role", "user"))
		if err := session.Save(); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})

	public := r.Group("/api")
	{
		public.GET("/blogs", api.ListBlogs)
		public.GET("/blogs/latest", api.LatestBlogs)
		public.GET("/blogs/:id", api.ShowBlog)
		public.GET("/blogs/:id/comments", api.ListComments)
		public.GET("/blogs/:id/reactions", api.ReactionSummary)
		public.POST("/views", api.RecordView)

		auth := public.Group("")
		auth.Use(AuthRequired())
		{
			auth.POST("/blogs/:id/comments", api.CreateComment)
			auth.POST("/blogs/:id/reactions", api.ToggleReaction)
			auth.GET("/blogs/:id/reactions/me", api.MyReaction)
		}
	}

	admin := r.Group("/api/admin")
	admin.Use(AuthRequired(), AdminRequired())
	{
		admin.GET("/engagement", api.Engagement)
		admin.GET("/overview", api.Overview)
		admin.GET("/blogs/:id/reactions", api.BlogReactionDetails)
	}

	return r
}

// loginSession 通过测试路由取得一个已认证的会话 Cookie。
func loginSession(t *testing.T, router *gin.Engine, userID uint, username, role string) string {
	t.Helper()

	url := fmt.Sprintf("/test/login?user_id=%d&username=%s&role=%s", userID, username, role)
	req := httptest.NewRequest(http.MethodPost, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("test login failed with status %d", rec.Code)
	}

	cookieHeader := rec.Header().Get("Set-Cookie")
	if cookieHeader == "" {
		t.Fatal("expected session cookie from test login")
	}
	return strings.Split(cookieHeader, ";")[0]
}

func seedBlog(t *testing.T, gdb *gorm.DB, title string) db.Blog {
	t.Helper()

	blog := db.Blog{Title: title, Description: "简介", Content: "# " + title + "\n**正文**", Slug: strings.ToLower(strings.ReplaceAll(title, " ", "-"))}
	if err := gdb.Create(&blog).Error; err != nil {
		t.Fatalf("failed to create blog: %v", err)
	}
	return blog
}

func seedUser(t *testing.T, gdb *gorm.DB, username, role string) db.User {
	t.Helper()

	user := db.User{Username: username, Email: username + "@example.com", Password: "x", Role: role}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func newTestAPI(gdb *gorm.DB) *API {
	return NewAPI(gdb, service.PolicyUserOrIP)
}
