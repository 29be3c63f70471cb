package handler

import (
	"github.com/blogpulse/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	blogs      *service.BlogService
	comments   *service.CommentService
	reactions  *service.ReactionService
	views      *service.ViewService
	engagement *service.EngagementService
	stats      *service.StatsService
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, policy service.ViewDedupPolicy) *API {
	return &API{
		blogs:      service.NewBlogService(gdb),
		comments:   service.NewCommentService(gdb),
		reactions:  service.NewReactionService(gdb),
		views:      service.NewViewService(gdb).WithPolicy(policy),
		engagement: service.NewEngagementService(gdb),
		stats:      service.NewStatsService(gdb),
	}
}