package service

import (
	"errors"
	"strings"

	"github.com/blogpulse/internal/db"
	"gorm.io/gorm"
)

// BlogService wraps blog related database operations.
type BlogService struct {
	db *gorm.DB
}

// BlogFilter describes filters for listing blogs.
type BlogFilter struct {
	Search  string
	Page    int
	PerPage int
}

// BlogListResult aggregates paginated list data and counters.
type BlogListResult struct {
	Blogs      []db.Blog
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	return &BlogService{db: gdb}
}

// List returns blogs ordered by updated time descending, optionally filtered
// by a case-insensitive search over title, description and content.
func (s *BlogService) List(filter BlogFilter) (BlogListResult, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 6
	}

	query := s.db.Model(&db.Blog{})
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(content) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return BlogListResult{}, err
	}

	var blogs []db.Blog
	if err := query.
		Order("updated_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&blogs).Error; err != nil {
		return BlogListResult{}, err
	}

	totalPages := int((total + int64(perPage) - 1) / int64(perPage))

	return BlogListResult{
		Blogs:      blogs,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

// Latest returns the most recently updated blogs for the home page.
func (s *BlogService) Latest(limit int) ([]db.Blog, error) {
	if limit <= 0 {
		limit = 3
	}

	var blogs []db.Blog
	if err := s.db.Order("updated_at DESC").Limit(limit).Find(&blogs).Error; err != nil {
		return nil, err
	}
	return blogs, nil
}

// Get fetches a blog by id with its author preloaded.
func (s *BlogService) Get(id uint) (*db.Blog, error) {
	var blog db.Blog
	if err := s.db.Preload("Author").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

// Exists reports whether a non-deleted blog with the given id exists.
func (s *BlogService) Exists(id uint) (bool, error) {
	return blogExists(s.db, id)
}

// blogExists is the shared existence precondition used by the services
// that attach rows to a blog.
func blogExists(gdb *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := gdb.Model(&db.Blog{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a blog and all dependent rows in a single transaction,
// so a partial failure cannot leave orphaned comments, reactions or views.
func (s *BlogService) Delete(id uint) error {
	var blog db.Blog
	if err := s.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBlogNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("blog_id = ?", id).Delete(&db.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&db.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", id).Delete(&db.ViewEvent{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&db.Blog{}, id).Error
	})
}
