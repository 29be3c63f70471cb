package db

import "time"

// Reaction 记录用户对文章的表态。
// 不使用软删除：toggle-off 必须真正移除记录，否则唯一索引会挡住再次表态。
type Reaction struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"uniqueIndex:idx_reactions_user_blog"`
	BlogID       uint   `gorm:"uniqueIndex:idx_reactions_user_blog"`
	ReactionType string `gorm:"size:16;not null"`
	CreatedAt    time.Time
}

// TableName 指定自定义表名，避免自动复数化导致的歧义。
func (Reaction) TableName() string {
	return "reactions"
}
