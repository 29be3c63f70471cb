package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/blogpulse/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 按测试名打开独立的内存数据库，避免用例之间互相污染。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.User{}, &db.Blog{}, &db.Comment{}, &db.Reaction{}, &db.ViewEvent{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return gdb
}

func createTestUser(t *testing.T, gdb *gorm.DB, username string) db.User {
	t.Helper()

	user := db.User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := gdb.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createTestBlog(t *testing.T, gdb *gorm.DB, title string) db.Blog {
	t.Helper()

	blog := db.Blog{Title: title, Description: "简介", Content: "# " + title + "\n正文", Slug: strings.ToLower(strings.ReplaceAll(title, " ", "-"))}
	if err := gdb.Create(&blog).Error; err != nil {
		t.Fatalf("failed to create blog: %v", err)
	}
	return blog
}

func countViewRows(t *testing.T, gdb *gorm.DB, blogID uint) int64 {
	t.Helper()

	var count int64
	if err := gdb.Model(&db.ViewEvent{}).Where("blog_id = ?", blogID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count view rows: %v", err)
	}
	return count
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}
