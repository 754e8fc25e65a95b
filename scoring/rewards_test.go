package scoring

import (
	"testing"
	"time"

	"geeksboard/repository"

	"github.com/stretchr/testify/assert"
)

func TestRunMonthlyRewards(t *testing.T) {
	group := SetUp()
	defer TearDown()
	homework := categoryBySlug(repository.SlugHomework)
	aziza, bobur, davron, zafar := group.Students[0], group.Students[1], group.Students[2], group.Students[3]

	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	addPoints(aziza.Id, homework.Id, 10, march)
	addPoints(aziza.Id, homework.Id, 10, march)
	addPoints(aziza.Id, homework.Id, 10, march)
	addPoints(bobur.Id, homework.Id, 10, march)
	addPoints(bobur.Id, homework.Id, 10, march)
	addPoints(davron.Id, homework.Id, 10, march)
	_ = zafar // no events

	stats, err := RunMonthlyRewards(db, march)
	assert.Nil(t, err)
	assert.Equal(t, 1, stats.GroupsProcessed)
	assert.Equal(t, 3, stats.StudentsRewarded)
	assert.Equal(t, 30, stats.PointsAwarded)

	var rewards []*repository.PointEvent
	err = db.Order("score desc").Find(&rewards, "reason = ?", repository.MonthlyRewardReason).Error
	assert.Nil(t, err)
	assert.Len(t, rewards, 3)
	assert.Equal(t, aziza.Id, rewards[0].StudentId)
	assert.Equal(t, 15, rewards[0].Score)
	assert.Equal(t, homework.Id, rewards[0].CategoryId)
	assert.Equal(t, "Top 1 student for March 2025", rewards[0].Note)
	assert.Equal(t, bobur.Id, rewards[1].StudentId)
	assert.Equal(t, 10, rewards[1].Score)
	assert.Equal(t, davron.Id, rewards[2].StudentId)
	assert.Equal(t, 5, rewards[2].Score)
	assert.Equal(t, "Top 3 student for March 2025", rewards[2].Note)
}

func TestRunMonthlyRewardsSecondRunSkips(t *testing.T) {
	group := SetUp()
	defer TearDown()
	homework := categoryBySlug(repository.SlugHomework)
	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	addPoints(group.Students[0].Id, homework.Id, 10, march)

	stats, err := RunMonthlyRewards(db, march)
	assert.Nil(t, err)
	assert.Equal(t, 1, stats.StudentsRewarded)

	stats, err = RunMonthlyRewards(db, march)
	assert.Nil(t, err)
	assert.Equal(t, 1, stats.GroupsProcessed, "the group is still visited")
	assert.Equal(t, 0, stats.StudentsRewarded, "but not rewarded twice")
	assert.Equal(t, 0, stats.PointsAwarded)

	var count int64
	db.Model(&repository.PointEvent{}).Where("reason = ?", repository.MonthlyRewardReason).Count(&count)
	assert.Equal(t, int64(1), count)

	// a different month is a fresh run
	april := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)
	addPoints(group.Students[1].Id, homework.Id, 10, april)
	stats, err = RunMonthlyRewards(db, april)
	assert.Nil(t, err)
	assert.NotZero(t, stats.StudentsRewarded)
}

func TestRunMonthlyRewardsOnlyPositiveTotals(t *testing.T) {
	group := SetUp()
	defer TearDown()
	homework := categoryBySlug(repository.SlugHomework)
	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	addPoints(group.Students[0].Id, homework.Id, 10, march)
	addPoints(group.Students[1].Id, homework.Id, -5, march)

	stats, err := RunMonthlyRewards(db, march)
	assert.Nil(t, err)
	assert.Equal(t, 1, stats.StudentsRewarded, "zero and negative totals earn nothing")
	assert.Equal(t, 15, stats.PointsAwarded)
}

func TestRunMonthlyRewardsFallbackCategory(t *testing.T) {
	group := SetUp()
	defer TearDown()
	attendance := categoryBySlug(repository.SlugAttendance)
	db.Exec("DELETE FROM point_categories WHERE slug = ?", repository.SlugHomework)

	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	addPoints(group.Students[0].Id, attendance.Id, 5, march)

	stats, err := RunMonthlyRewards(db, march)
	assert.Nil(t, err)
	assert.Equal(t, 1, stats.StudentsRewarded)

	var reward repository.PointEvent
	err = db.First(&reward, "reason = ?", repository.MonthlyRewardReason).Error
	assert.Nil(t, err)
	assert.NotEqual(t, 0, reward.CategoryId, "reward lands in the first remaining category")
}

func TestRunMonthlyRewardsTriggersBadges(t *testing.T) {
	group := SetUp()
	defer TearDown()
	homework := categoryBySlug(repository.SlugHomework)
	student := group.Students[0]
	createBadge(&repository.Badge{
		Name:          "Forty",
		CriteriaType:  repository.TOTAL_POINTS,
		CriteriaValue: 40,
		IsActive:      true,
	})

	march := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	addPoints(student.Id, homework.Id, 10, march)
	addPoints(student.Id, homework.Id, 10, march)
	addPoints(student.Id, homework.Id, 10, march)

	_, err := RunMonthlyRewards(db, march)
	assert.Nil(t, err)

	// 30 from the ledger plus the 15 point bonus crosses the threshold
	var count int64
	db.Model(&repository.StudentBadge{}).Where("student_id = ?", student.Id).Count(&count)
	assert.Equal(t, int64(1), count)
}
