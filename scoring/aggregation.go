package scoring

import (
	"time"

	"geeksboard/repository"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"gorm.io/gorm"
)

var scoreQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "geeksboard_score_query_duration_seconds",
	Help: "Duration of score aggregation queries",
}, []string{"query"})

// CategoryScore is one line of a student's score breakdown.
type CategoryScore struct {
	CategoryName string `json:"category_name"`
	Total        int    `json:"total"`
}

// TotalScore sums a student's point events over the half-open window
// [start, end). Nil bounds leave that side of the window open. An empty
// ledger sums to zero.
func TotalScore(db *gorm.DB, studentId int, start *time.Time, end *time.Time) (int, error) {
	timer := prometheus.NewTimer(scoreQueryDuration.WithLabelValues("TotalScore"))
	defer timer.ObserveDuration()
	query := db.Model(&repository.PointEvent{}).Where("student_id = ?", studentId)
	if start != nil {
		query = query.Where("timestamp >= ?", *start)
	}
	if end != nil {
		query = query.Where("timestamp < ?", *end)
	}
	var total int
	err := query.Select("COALESCE(SUM(score), 0)").Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Breakdown returns the student's total per category, ordered by category name.
func Breakdown(db *gorm.DB, studentId int, start *time.Time, end *time.Time) ([]*CategoryScore, error) {
	timer := prometheus.NewTimer(scoreQueryDuration.WithLabelValues("Breakdown"))
	defer timer.ObserveDuration()
	query := db.Model(&repository.PointEvent{}).
		Joins("JOIN point_categories ON point_categories.id = point_events.category_id").
		Where("point_events.student_id = ?", studentId)
	if start != nil {
		query = query.Where("point_events.timestamp >= ?", *start)
	}
	if end != nil {
		query = query.Where("point_events.timestamp < ?", *end)
	}
	breakdown := make([]*CategoryScore, 0)
	err := query.
		Select("point_categories.name AS category_name, SUM(point_events.score) AS total").
		Group("point_categories.name").
		Order("point_categories.name").
		Scan(&breakdown).Error
	if err != nil {
		return nil, err
	}
	return breakdown, nil
}

// MonthWindow returns the half-open window [first of month 00:00, first of
// next month 00:00) in t's location. December rolls over to January.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	var end time.Time
	if start.Month() == time.December {
		end = time.Date(start.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
	} else {
		end = time.Date(start.Year(), start.Month()+1, 1, 0, 0, 0, 0, t.Location())
	}
	return start, end
}

type Direction string

const (
	DirectionUp      Direction = "up"
	DirectionDown    Direction = "down"
	DirectionNeutral Direction = "neutral"
)

type Trend struct {
	Current       int       `json:"current"`
	Previous      int       `json:"previous"`
	Change        int       `json:"change"`
	ChangePercent float64   `json:"change_percent"`
	Direction     Direction `json:"direction"`
}

// ComputeTrend compares the window [now-days, now) against [now-2*days, now-days).
// The reference time is always passed in; only the scheduling layer reads the clock.
func ComputeTrend(db *gorm.DB, studentId int, now time.Time, days int) (*Trend, error) {
	currentStart := now.AddDate(0, 0, -days)
	previousStart := currentStart.AddDate(0, 0, -days)

	current, err := TotalScore(db, studentId, &currentStart, &now)
	if err != nil {
		return nil, err
	}
	previous, err := TotalScore(db, studentId, &previousStart, &currentStart)
	if err != nil {
		return nil, err
	}
	return deriveTrend(current, previous), nil
}

// deriveTrend applies the zero-division policy: with no previous score the
// percentage is pinned to 100 (any gain) or 0 (no gain) instead of dividing.
func deriveTrend(current int, previous int) *Trend {
	trend := &Trend{
		Current:  current,
		Previous: previous,
		Change:   current - previous,
	}
	if previous == 0 {
		if current > 0 {
			trend.ChangePercent = 100
		}
	} else {
		absPrevious := previous
		if absPrevious < 0 {
			absPrevious = -absPrevious
		}
		trend.ChangePercent = float64(current-previous) / float64(absPrevious) * 100
	}
	switch {
	case current > previous:
		trend.Direction = DirectionUp
	case current < previous:
		trend.Direction = DirectionDown
	default:
		trend.Direction = DirectionNeutral
	}
	return trend
}
