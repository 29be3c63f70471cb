package service

import (
	"errors"
	"strings"
	"time"

	"github.com/blogpulse/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

var ErrEmptyComment = errors.New("comment content is empty")

// CommentView 是评论列表返回的展示结构，带上了作者用户名。
type CommentView struct {
	ID        uint      `json:"id"`
	BlogID    uint      `json:"blog_id"`
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentService 处理评论的写入与读取，用户提交的内容先过一遍 UGC 白名单。
type CommentService struct {
	db        *gorm.DB
	sanitizer *bluemonday.Policy
}

// NewCommentService 创建 CommentService。
func NewCommentService(gdb *gorm.DB) *CommentService {
	return &CommentService{db: gdb, sanitizer: bluemonday.UGCPolicy()}
}

// Add 为文章新增一条评论，内容经过清洗后入库。
func (s *CommentService) Add(blogID, userID uint, content string) (*db.Comment, error) {
	cleaned := strings.TrimSpace(s.sanitizer.Sanitize(content))
	if cleaned == "" {
		return nil, ErrEmptyComment
	}

	exists, err := blogExists(s.db, blogID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBlogNotFound
	}

	comment := db.Comment{BlogID: blogID, UserID: userID, Content: cleaned}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListForBlog 返回文章的全部评论，按时间倒序并带上用户名。
func (s *CommentService) ListForBlog(blogID uint) ([]CommentView, error) {
	var comments []CommentView
	if err := s.db.Table("comments c").
		Select("c.id, c.blog_id, c.user_id, u.username, c.content, c.created_at").
		Joins("JOIN users u ON u.id = c.user_id").
		Where("c.blog_id = ? AND c.deleted_at IS NULL", blogID).
		Order("c.created_at DESC").
		Scan(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
