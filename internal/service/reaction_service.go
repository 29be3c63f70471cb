package service

import (
	"errors"
	"strings"

	"github.com/blogpulse/internal/db"
	"gorm.io/gorm"
)

// Toggle 的三种结果，分别对应新增、改写、移除。
const (
	ReactionAdded   = "added"
	ReactionUpdated = "updated"
	ReactionRemoved = "removed"
)

var ErrInvalidReaction = errors.New("invalid reaction")

// ReactionService 维护 (user, blog) 维度的表态状态机：
// 无表态 → 点击新增；同类型再点 → 移除；不同类型 → 原地改写并保留 created_at。
type ReactionService struct {
	db *gorm.DB
}

// NewReactionService 创建 ReactionService。
func NewReactionService(gdb *gorm.DB) *ReactionService {
	return &ReactionService{db: gdb}
}

// Toggle 处理一次表态点击，返回 added/updated/removed 之一。
// 分支由一次前置读取决定。跨用户的并发天然安全（各自操作不同的行）；
// 同一用户并发提交互相冲突的表态不在保障范围内。
func (s *ReactionService) Toggle(userID, blogID uint, reactionType string) (string, error) {
	reactionType = strings.TrimSpace(reactionType)
	if userID == 0 || blogID == 0 || reactionType == "" {
		return "", ErrInvalidReaction
	}

	var existing db.Reaction
	err := s.db.Where("user_id = ? AND blog_id = ?", userID, blogID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		record := db.Reaction{UserID: userID, BlogID: blogID, ReactionType: reactionType}
		if err := s.db.Create(&record).Error; err != nil {
			return "", err
		}
		return ReactionAdded, nil
	case err != nil:
		return "", err
	}

	if existing.ReactionType == reactionType {
		// 同类型再次点击即 toggle-off，物理删除该行
		if err := s.db.Delete(&db.Reaction{}, existing.ID).Error; err != nil {
			return "", err
		}
		return ReactionRemoved, nil
	}

	// 换一种表态：原地更新类型，created_at 保持首次表态时间
	if err := s.db.Model(&db.Reaction{}).
		Where("id = ?", existing.ID).
		Update("reaction_type", reactionType).Error; err != nil {
		return "", err
	}
	return ReactionUpdated, nil
}

// Summary 返回文章各表态类型的数量，只读不改状态。
func (s *ReactionService) Summary(blogID uint) (map[string]int64, error) {
	var rows []struct {
		ReactionType string
		Count        int64
	}

	if err := s.db.Model(&db.Reaction{}).
		Select("reaction_type, COUNT(*) AS count").
		Where("blog_id = ?", blogID).
		Group("reaction_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	summary := make(map[string]int64, len(rows))
	for _, row := range rows {
		summary[row.ReactionType] = row.Count
	}
	return summary, nil
}

// UserReaction 返回用户在指定文章上的当前表态类型，没有表态时返回空串。
func (s *ReactionService) UserReaction(userID, blogID uint) (string, error) {
	var record db.Reaction
	err := s.db.Where("user_id = ? AND blog_id = ?", userID, blogID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return record.ReactionType, nil
}

// ReactionDetail 描述后台报表里的一条表态明细。
type ReactionDetail struct {
	Username     string `json:"username"`
	ReactionType string `json:"reaction_type"`
}

// Details 返回文章的表态明细（带用户名），供后台分析使用。
func (s *ReactionService) Details(blogID uint) ([]ReactionDetail, error) {
	var details []ReactionDetail
	if err := s.db.Table("reactions r").
		Select("u.username, r.reaction_type").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("r.blog_id = ?", blogID).
		Order("r.created_at DESC").
		Scan(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}
