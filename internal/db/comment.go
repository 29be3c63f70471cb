package db

import "gorm.io/gorm"

// Comment 定义了评论模型，互动统计会按天聚合该表。
type Comment struct {
	gorm.Model
	BlogID  uint   `gorm:"index;not null"`
	UserID  uint   `gorm:"index;not null"`
	Content string `gorm:"type:text;not null"`
}
