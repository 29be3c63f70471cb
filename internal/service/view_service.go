package service

import (
	"errors"
	"time"

	"github.com/blogpulse/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultViewDedupWindow = time.Hour

// ViewDedupPolicy 决定浏览记录按哪种键去重。
type ViewDedupPolicy string

const (
	// PolicyUserOrIP 登录用户按 (blog_id, user_id) 去重，匿名访客按 (blog_id, ip_address)。
	PolicyUserOrIP ViewDedupPolicy = "user-or-ip"
	// PolicyIPOnly 无论是否登录都按 (blog_id, ip_address) 去重，user_id 恒为 NULL。
	PolicyIPOnly ViewDedupPolicy = "ip-only"
)

// ParseViewDedupPolicy 解析配置值，未识别时回退到默认策略。
func ParseViewDedupPolicy(raw string) ViewDedupPolicy {
	if ViewDedupPolicy(raw) == PolicyIPOnly {
		return PolicyIPOnly
	}
	return PolicyUserOrIP
}

var (
	ErrBlogNotFound  = errors.New("blog not found")
	ErrInvalidViewer = errors.New("invalid viewer key")
)

// ViewService 负责处理文章浏览的幂等记录。
type ViewService struct {
	db          *gorm.DB
	dedupWindow time.Duration
	policy      ViewDedupPolicy
}

// NewViewService 创建 ViewService，默认去重窗口为 1 小时。
func NewViewService(gdb *gorm.DB) *ViewService {
	return &ViewService{db: gdb, dedupWindow: defaultViewDedupWindow, policy: PolicyUserOrIP}
}

// WithDedupWindow 允许在测试或特定场景下调整去重窗口。
func (s *ViewService) WithDedupWindow(d time.Duration) *ViewService {
	if d <= 0 {
		return s
	}
	s.dedupWindow = d
	return s
}

// WithPolicy 切换去重策略。
func (s *ViewService) WithPolicy(p ViewDedupPolicy) *ViewService {
	if p == PolicyUserOrIP || p == PolicyIPOnly {
		s.policy = p
	}
	return s
}

// RecordView 记录一次浏览。同一访问者在去重窗口内的重复浏览是成功的空操作：
// 冲突时的条件更新只在已有记录超过窗口时才刷新 viewed_at，检查与写入由
// 单条 upsert 语句原子完成，并发重复请求不会产生第二条记录。
func (s *ViewService) RecordView(blogID uint, key ViewerKey, now time.Time) error {
	if blogID == 0 {
		return ErrBlogNotFound
	}

	exists, err := blogExists(s.db, blogID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrBlogNotFound
	}

	cutoff := now.Add(-s.dedupWindow)

	if s.policy == PolicyUserOrIP && key.Authenticated() {
		userID := key.UserID
		event := db.ViewEvent{BlogID: blogID, UserID: &userID, ViewedAt: now}
		return s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "blog_id"}, {Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"viewed_at": now}),
			Where:     clause.Where{Exprs: []clause.Expression{gorm.Expr("blog_views.viewed_at < ?", cutoff)}},
		}).Create(&event).Error
	}

	ip := key.IPAddress
	if ip == "" {
		return ErrInvalidViewer
	}

	event := db.ViewEvent{BlogID: blogID, IPAddress: &ip, ViewedAt: now}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blog_id"}, {Name: "ip_address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"viewed_at": now}),
		Where:     clause.Where{Exprs: []clause.Expression{gorm.Expr("blog_views.viewed_at < ?", cutoff)}},
	}).Create(&event).Error
}
