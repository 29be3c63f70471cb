package service

import (
	"github.com/blogpulse/internal/db"
	"gorm.io/gorm"
)

// SiteOverview 聚合后台仪表盘需要的站点层面数据。
type SiteOverview struct {
	UserCount    int64         `json:"user_count"`
	BlogCount    int64         `json:"blog_count"`
	CommentCount int64         `json:"comment_count"`
	TopBlogs     []TopBlogStat `json:"top_blogs"`
}

// TopBlogStat 描述热门文章的统计信息。
type TopBlogStat struct {
	BlogID uint   `json:"blog_id"`
	Title  string `json:"title"`
	Views  int64  `json:"views"`
}

// StatsService 汇总全站计数与热门文章。
type StatsService struct {
	db *gorm.DB
}

// NewStatsService 创建 StatsService。
func NewStatsService(gdb *gorm.DB) *StatsService {
	return &StatsService{db: gdb}
}

// Overview 返回站点总览，热门文章按浏览记录数倒序取前 limit 篇。
func (s *StatsService) Overview(limit int) (SiteOverview, error) {
	if limit <= 0 {
		limit = 5
	}

	var overview SiteOverview

	if err := s.db.Model(&db.User{}).Count(&overview.UserCount).Error; err != nil {
		return overview, err
	}
	if err := s.db.Model(&db.Blog{}).Count(&overview.BlogCount).Error; err != nil {
		return overview, err
	}
	if err := s.db.Model(&db.Comment{}).Count(&overview.CommentCount).Error; err != nil {
		return overview, err
	}

	var topBlogs []TopBlogStat
	if err := s.db.Table("blog_views v").
		Select("v.blog_id, b.title, COUNT(*) AS views").
		Joins("JOIN blogs b ON b.id = v.blog_id").
		Where("b.deleted_at IS NULL").
		Group("v.blog_id, b.title").
		Order("views DESC").
		Limit(limit).
		Scan(&topBlogs).Error; err != nil {
		return overview, err
	}

	overview.TopBlogs = topBlogs
	return overview, nil
}
