package scoring

import (
	"geeksboard/metrics"
	"geeksboard/repository"

	"gorm.io/gorm"
)

type criteriaHandler func(db *gorm.DB, studentId int, badge *repository.Badge) (bool, error)

var criteriaHandlers = map[repository.BadgeCriteriaType]criteriaHandler{
	repository.TOTAL_POINTS:        handleTotalPoints,
	repository.HOMEWORK_COMPLETION: categoryCountHandler(repository.SlugHomework),
	repository.PARTICIPATION_COUNT: categoryCountHandler(repository.SlugParticipation),
	repository.ATTENDANCE_COUNT:    categoryCountHandler(repository.SlugAttendance),
	repository.TOP_RANK:            handleTopRank,
}

// EvaluateBadges tests every active badge the student has not earned yet and
// records the ones that now qualify. Only badges earned by this invocation
// are returned; the (student, badge) primary key keeps re-runs idempotent.
func EvaluateBadges(db *gorm.DB, studentId int) ([]*repository.Badge, error) {
	badgeRepository := &repository.BadgeRepository{DB: db}
	activeBadges, err := badgeRepository.GetActiveBadges()
	if err != nil {
		return nil, err
	}
	earned, err := badgeRepository.GetEarnedBadgeIds(studentId)
	if err != nil {
		return nil, err
	}

	newlyEarned := make([]*repository.Badge, 0)
	for _, badge := range activeBadges {
		if earned[badge.Id] {
			continue
		}
		handler, ok := criteriaHandlers[badge.CriteriaType]
		if !ok {
			continue
		}
		qualifies, err := handler(db, studentId, badge)
		if err != nil {
			return nil, err
		}
		if !qualifies {
			continue
		}
		awarded, err := badgeRepository.Award(studentId, badge.Id)
		if err != nil {
			return nil, err
		}
		// a concurrent evaluation may have won the insert
		if !awarded {
			continue
		}
		metrics.BadgesAwardedCounter.Inc()
		newlyEarned = append(newlyEarned, badge)
	}
	return newlyEarned, nil
}

func handleTotalPoints(db *gorm.DB, studentId int, badge *repository.Badge) (bool, error) {
	total, err := TotalScore(db, studentId, nil, nil)
	if err != nil {
		return false, err
	}
	return total >= badge.CriteriaValue, nil
}

// categoryCountHandler counts positive events in the category with the given
// slug. A missing category never qualifies rather than erroring, so stale
// badge definitions stay inert.
func categoryCountHandler(slug string) criteriaHandler {
	return func(db *gorm.DB, studentId int, badge *repository.Badge) (bool, error) {
		category, err := (&repository.PointCategoryRepository{DB: db}).GetCategoryBySlug(slug)
		if err != nil {
			return false, err
		}
		if category == nil {
			return false, nil
		}
		var count int64
		err = db.Model(&repository.PointEvent{}).
			Where("student_id = ? AND category_id = ? AND score > 0", studentId, category.Id).
			Count(&count).Error
		if err != nil {
			return false, err
		}
		return count >= int64(badge.CriteriaValue), nil
	}
}

// handleTopRank qualifies when the student's 1-based all-time rank within
// their group is at most the criteria value.
func handleTopRank(db *gorm.DB, studentId int, badge *repository.Badge) (bool, error) {
	student, err := (&repository.StudentRepository{DB: db}).GetStudentById(studentId)
	if err != nil {
		return false, err
	}
	ranked, err := RankStudents(db, student.GroupId, nil, nil)
	if err != nil {
		return false, err
	}
	for _, entry := range ranked {
		if entry.StudentId == studentId {
			return entry.Rank <= badge.CriteriaValue, nil
		}
	}
	return false, nil
}
