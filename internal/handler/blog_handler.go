package handler

import (
	"errors"
	"net/http"

	"github.com/blogpulse/internal/db"
	"github.com/blogpulse/internal/service"
	"github.com/gin-gonic/gin"
)

type blogListItem struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	CoverURL    string `json:"cover_url"`
	UpdatedAt   string `json:"updated_at"`
}

// ListBlogs returns a paginated blog list with optional full-text-ish search.
func (a *API) ListBlogs(c *gin.Context) {
	filter := service.BlogFilter{
		Search:  c.Query("search"),
		Page:    parsePositiveInt(c.DefaultQuery("page", "1"), 1),
		PerPage: parsePositiveInt(c.DefaultQuery("limit", "6"), 6),
	}

	result, err := a.blogs.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch blogs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blogs":       toBlogListItems(result.Blogs),
		"totalBlogs":  result.Total,
		"totalPages":  result.TotalPages,
		"currentPage": result.Page,
	})
}

// LatestBlogs returns the newest blogs for the home page.
func (a *API) LatestBlogs(c *gin.Context) {
	blogs, err := a.blogs.Latest(3)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch blogs")
		return
	}

	c.JSON(http.StatusOK, gin.H{"blogs": toBlogListItems(blogs)})
}

// ShowBlog returns a single blog with its content rendered to HTML.
func (a *API) ShowBlog(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := a.blogs.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrBlogNotFound) {
			respondError(c, http.StatusNotFound, "blog not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to fetch blog")
		return
	}

	htmlContent, err := renderMarkdown(blog.Content)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to render content")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"blog": gin.H{
			"id":          blog.ID,
			"title":       blog.Title,
			"description": blog.Description,
			"slug":        blog.Slug,
			"cover_url":   blog.CoverURL,
			"content":     blog.Content,
			"html":        htmlContent,
			"author":      blog.Author.Username,
			"updated_at":  blog.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		},
	})
}

func toBlogListItems(blogs []db.Blog) []blogListItem {
	items := make([]blogListItem, 0, len(blogs))
	for _, blog := range blogs {
		items = append(items, blogListItem{
			ID:          blog.ID,
			Title:       blog.Title,
			Description: blog.Description,
			Slug:        blog.Slug,
			CoverURL:    blog.CoverURL,
			UpdatedAt:   blog.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return items
}
