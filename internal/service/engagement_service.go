package service

import (
	"errors"
	"time"

	"github.com/blogpulse/internal/db"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var ErrInvalidRange = errors.New("invalid date range")

// EngagementSample 是互动时间序列中的单日样本，不落库，每次查询重新计算。
type EngagementSample struct {
	Date      string `json:"date"`
	Views     int64  `json:"views"`
	Comments  int64  `json:"comments"`
	Reactions int64  `json:"reactions"`
}

// EngagementService 将浏览、评论、表态三条事件流合并成按天对齐的序列。
type EngagementService struct {
	db *gorm.DB
}

// NewEngagementService 创建 EngagementService。
func NewEngagementService(gdb *gorm.DB) *EngagementService {
	return &EngagementService{db: gdb}
}

type dailyCount struct {
	Day   string
	Count int64
}

// Series 返回 [start, end] 闭区间内每天一条的样本，升序排列。
// 先生成完整的日期骨架再合并聚合结果，没有事件的日子也会以全零出现；
// 三条流各自独立聚合后按日期左连，互相之间不会放大计数。
func (s *EngagementService) Series(start, end time.Time) ([]EngagementSample, error) {
	startDay := start.UTC().Truncate(24 * time.Hour)
	endDay := end.UTC().Truncate(24 * time.Hour)

	if startDay.After(endDay) {
		return nil, ErrInvalidRange
	}

	startStr := startDay.Format(dateLayout)
	endStr := endDay.Format(dateLayout)

	views, err := s.dailyCounts(
		s.db.Model(&db.ViewEvent{}).
			Select("date(viewed_at) AS day, COUNT(DISTINCT blog_id) AS count").
			Where("date(viewed_at) BETWEEN ? AND ?", startStr, endStr).
			Group("date(viewed_at)"),
	)
	if err != nil {
		return nil, err
	}

	comments, err := s.dailyCounts(
		s.db.Model(&db.Comment{}).
			Select("date(created_at) AS day, COUNT(DISTINCT id) AS count").
			Where("date(created_at) BETWEEN ? AND ?", startStr, endStr).
			Group("date(created_at)"),
	)
	if err != nil {
		return nil, err
	}

	reactions, err := s.dailyCounts(
		s.db.Model(&db.Reaction{}).
			Select("date(created_at) AS day, COUNT(DISTINCT id) AS count").
			Where("date(created_at) BETWEEN ? AND ?", startStr, endStr).
			Group("date(created_at)"),
	)
	if err != nil {
		return nil, err
	}

	// 日期骨架保证区间内每天都有一行，缺失的指标补零
	samples := make([]EngagementSample, 0, int(endDay.Sub(startDay).Hours()/24)+1)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		samples = append(samples, EngagementSample{
			Date:      key,
			Views:     views[key],
			Comments:  comments[key],
			Reactions: reactions[key],
		})
	}

	return samples, nil
}

func (s *EngagementService) dailyCounts(query *gorm.DB) (map[string]int64, error) {
	var rows []dailyCount
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Day] = row.Count
	}
	return counts, nil
}
