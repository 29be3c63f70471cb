package db

import "gorm.io/gorm"

// Blog 定义了博客文章模型，正文以 Markdown 存储，展示时再渲染。
type Blog struct {
	gorm.Model
	Title       string `gorm:"not null"`
	Description string
	Content     string `gorm:"type:text"`
	Slug        string `gorm:"uniqueIndex"`
	CoverURL    string
	AuthorID    uint `gorm:"index"`
	Author      User `gorm:"foreignKey:AuthorID"`
}
