package scoring

import (
	"fmt"
	"log"
	"time"

	"geeksboard/metrics"
	"geeksboard/repository"
	"geeksboard/utils"

	"gorm.io/gorm"
)

// Fixed bonus per leaderboard position, 1st to 3rd.
var rewardAmounts = []int{15, 10, 5}

type RewardStats struct {
	GroupsProcessed  int `json:"groups_processed"`
	StudentsRewarded int `json:"students_rewarded"`
	PointsAwarded    int `json:"points_awarded"`
}

// RunMonthlyRewards writes bonus point events for each group's top three
// students of the given month and re-evaluates their badges. Groups that
// already have a reward run recorded for the month are skipped, so re-running
// the job for the same month cannot double-award. A failing group is logged
// and does not abort the rest of the batch; rewards already written for it
// stay in place.
func RunMonthlyRewards(db *gorm.DB, month time.Time) (*RewardStats, error) {
	start, end := MonthWindow(month)
	monthKey := start.Format("2006-01")

	rewardCategory, err := rewardCategory(db)
	if err != nil {
		return nil, err
	}
	groups, err := (&repository.GroupRepository{DB: db}).FindAll()
	if err != nil {
		return nil, err
	}
	rewardRuns := &repository.RewardRunRepository{DB: db}

	stats := &RewardStats{}
	for _, group := range groups {
		stats.GroupsProcessed++
		hasRun, err := rewardRuns.HasRun(group.Id, monthKey)
		if err != nil {
			log.Printf("monthly rewards: group %d: %v", group.Id, err)
			continue
		}
		if hasRun {
			log.Printf("monthly rewards: group %d already rewarded for %s, skipping", group.Id, monthKey)
			continue
		}
		rewarded, points, err := rewardGroup(db, group.Id, rewardCategory, start, end)
		if err != nil {
			log.Printf("monthly rewards: group %d: %v", group.Id, err)
			continue
		}
		err = rewardRuns.RecordRun(&repository.RewardRun{
			GroupId:          group.Id,
			Month:            monthKey,
			StudentsRewarded: rewarded,
			PointsAwarded:    points,
		})
		if err != nil {
			log.Printf("monthly rewards: group %d: recording run: %v", group.Id, err)
		}
		stats.StudentsRewarded += rewarded
		stats.PointsAwarded += points
	}
	metrics.RewardRunCounter.Inc()
	metrics.RewardPointsCounter.Add(float64(stats.PointsAwarded))
	return stats, nil
}

// rewardGroup awards the top three positive-total students of one group.
func rewardGroup(db *gorm.DB, groupId int, category *repository.PointCategory, start time.Time, end time.Time) (int, int, error) {
	ranked, err := RankStudents(db, groupId, &start, &end)
	if err != nil {
		return 0, 0, err
	}
	eligible := utils.Filter(ranked, func(entry *RankedStudent) bool { return entry.Total > 0 })
	rewarded := 0
	points := 0
	for _, entry := range eligible {
		if rewarded >= len(rewardAmounts) {
			break
		}
		amount := rewardAmounts[rewarded]
		// reward events carry fixed bonuses and bypass the per-category
		// score bound that applies to mentor-entered events
		event := &repository.PointEvent{
			StudentId:  entry.StudentId,
			CategoryId: category.Id,
			Score:      amount,
			Reason:     repository.MonthlyRewardReason,
			Note:       fmt.Sprintf("Top %d student for %s", rewarded+1, start.Format("January 2006")),
			Timestamp:  time.Now(),
		}
		if err := db.Create(event).Error; err != nil {
			return rewarded, points, err
		}
		metrics.PointEventCounter.WithLabelValues("reward").Inc()
		rewarded++
		points += amount

		// a fresh reward can push the student over a badge threshold
		if _, err := EvaluateBadges(db, entry.StudentId); err != nil {
			return rewarded, points, err
		}
	}
	return rewarded, points, nil
}

// rewardCategory picks where reward events land: the homework category, or
// the first category on record when homework is gone.
func rewardCategory(db *gorm.DB) (*repository.PointCategory, error) {
	categories := &repository.PointCategoryRepository{DB: db}
	category, err := categories.GetCategoryBySlug(repository.SlugHomework)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}
	return categories.FirstCategory()
}
