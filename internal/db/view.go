package db

import "time"

// ViewEvent 记录访客层面的浏览历史，用于按访问者去重。
// 一行要么带 user_id，要么带 ip_address，二者互斥；未使用的一列保持 NULL，
// 因此两个组合唯一索引互不干扰。
type ViewEvent struct {
	ID        uint    `gorm:"primaryKey"`
	BlogID    uint    `gorm:"uniqueIndex:idx_blog_views_user;uniqueIndex:idx_blog_views_ip"`
	UserID    *uint   `gorm:"uniqueIndex:idx_blog_views_user"`
	IPAddress *string `gorm:"size:64;uniqueIndex:idx_blog_views_ip"`
	ViewedAt  time.Time
}

// TableName 指定自定义表名。
func (ViewEvent) TableName() string {
	return "blog_views"
}
