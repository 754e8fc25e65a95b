package cron

import (
	"context"
	"log"
	"time"

	"geeksboard/config"
	"geeksboard/scoring"

	"gorm.io/gorm"
)

// MonthlyRewardJob hands out the top-3 bonus shortly after each month ends.
// Reward runs are recorded per group and month, so restarts or overlapping
// triggers do not double-award.
type MonthlyRewardJob struct {
	db *gorm.DB
}

func NewMonthlyRewardJob() *MonthlyRewardJob {
	return &MonthlyRewardJob{db: config.DatabaseConnection()}
}

func (j *MonthlyRewardJob) Start(ctx context.Context) {
	go func() {
		for {
			next := nextRun(time.Now())
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Until(next)):
			}
			// reward the month that just ended
			month := next.AddDate(0, 0, -1)
			stats, err := scoring.RunMonthlyRewards(j.db, month)
			if err != nil {
				log.Printf("monthly reward run failed: %v", err)
				continue
			}
			log.Printf("monthly reward run for %s: %d groups, %d students rewarded, %d points",
				month.Format("2006-01"), stats.GroupsProcessed, stats.StudentsRewarded, stats.PointsAwarded)
		}
	}()
}

// nextRun is 01:00 local on the first day of the month after now.
func nextRun(now time.Time) time.Time {
	firstOfNext := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	return firstOfNext.Add(time.Hour)
}
