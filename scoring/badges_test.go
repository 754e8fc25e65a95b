package scoring

import (
	"log"
	"testing"
	"time"

	"geeksboard/repository"

	"github.com/stretchr/testify/assert"
)

func createBadge(badge *repository.Badge) *repository.Badge {
	if err := db.Create(badge).Error; err != nil {
		log.Fatalf("Error creating badge: %v", err)
	}
	return badge
}

func TestEvaluateBadgesTotalPoints(t *testing.T) {
	group := SetUp()
	defer TearDown()
	student := group.Students[0]
	homework := categoryBySlug(repository.SlugHomework)
	badge := createBadge(&repository.Badge{
		Name:          "Collector",
		CriteriaType:  repository.TOTAL_POINTS,
		CriteriaValue: 20,
		IsActive:      true,
	})

	addPoints(student.Id, homework.Id, 10, time.Now())
	earned, err := EvaluateBadges(db, student.Id)
	assert.Nil(t, err)
	assert.Empty(t, earned, "threshold not reached yet")

	addPoints(student.Id, homework.Id, 10, time.Now())
	earned, err = EvaluateBadges(db, student.Id)
	assert.Nil(t, err)
	assert.Len(t, earned, 1)
	assert.Equal(t, badge.Id, earned[0].Id)

	// already earned badges are not returned again
	earned, err = EvaluateBadges(db, student.Id)
	assert.Nil(t, err)
	assert.Empty(t, earned)

	var count int64
	db.Model(&repository.StudentBadge{}).Where("student_id = ?", student.Id).Count(&count)
	assert.Equal(t, int64(1), count, "re-evaluation does not duplicate the award")
}

func TestEvaluateBadgesCategoryCount(t *testing.T) {
	group := SetUp()
	defer TearDown()
	student := group.Students[0]
	homework := categoryBySlug(repository.SlugHomework)
	attendance := categoryBySlug(repository.SlugAttendance)
	createBadge(&repository.Badge{
		Name:          "Diligent",
		CriteriaType:  repository.HOMEWORK_COMPLETION,
		CriteriaValue: 3,
		IsActive:      true,
	})

	now := time.Now()
	addPoints(student.Id, homework.Id, 5, now)
	addPoints(student.Id, homework.Id, 5, now)
	addPoints(student.Id, homework.Id, -5, now)
	addPoints(student.Id, attendance.Id, 5, now)

	earned, err := EvaluateBadges(db, student.Id)
	assert.Nil(t, err)
	assert.Empty(t, earned, "deductions and other categories do not count")

	addPoints(student.Id, homework.Id, 5, now)
	earned, err = EvaluateBadges(db, student.Id)
	assert.Nil(t, err)
	assert.Len(t, earned, 1)
}

func TestEvaluateBadgesMissingCategory(t *testing.T) {
	group := SetUp()
	defer TearDown()
	student := group.Students[0]
	db.Exec("DELETE FROM point_categories WHERE slug = ?", repository.SlugParticipation)
	createBadge(&repository.Badge{
		Name:          "Speaker",
		CriteriaType:  repository.PARTICIPATION_COUNT,
		CriteriaValue: 1,
		IsActive:      true,
	})

	earned, err := EvaluateBadges(db, student.Id)
	assert.Nil(t, err, "a badge pointing at a missing category is inert, not an error")
	assert.Empty(t, earned)
}

func TestEvaluateBadgesTopRank(t *testing.T) {
	group := SetUp()
	defer TearDown()
	homework := categoryBySlug(repository.SlugHomework)
	aziza, bobur := group.Students[0], group.Students[1]
	badge := createBadge(&repository.Badge{
		Name:          "Champion",
		CriteriaType:  repository.TOP_RANK,
		CriteriaValue: 1,
		IsActive:      true,
	})

	now := time.Now()
	addPoints(aziza.Id, homework.Id, 10, now)
	addPoints(bobur.Id, homework.Id, 5, now)

	earned, err := EvaluateBadges(db, aziza.Id)
	assert.Nil(t, err)
	assert.Len(t, earned, 1)
	assert.Equal(t, badge.Id, earned[0].Id)

	earned, err = EvaluateBadges(db, bobur.Id)
	assert.Nil(t, err)
	assert.Empty(t, earned, "rank 2 does not qualify for a top-1 badge")
}

func TestEvaluateBadgesInactiveSkipped(t *testing.T) {
	group := SetUp()
	defer TearDown()
	student := group.Students[0]
	homework := categoryBySlug(repository.SlugHomework)
	createBadge(&repository.Badge{
		Name:          "Retired",
		CriteriaType:  repository.TOTAL_POINTS,
		CriteriaValue: 1,
		IsActive:      false,
	})

	addPoints(student.Id, homework.Id, 10, time.Now())
	earned, err := EvaluateBadges(db, student.Id)
	assert.Nil(t, err)
	assert.Empty(t, earned)
}
