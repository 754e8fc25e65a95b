package repository

import (
	"time"

	"geeksboard/config"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeCriteriaType string

const (
	TOTAL_POINTS        BadgeCriteriaType = "TOTAL_POINTS"
	HOMEWORK_COMPLETION BadgeCriteriaType = "HOMEWORK_COMPLETION"
	PARTICIPATION_COUNT BadgeCriteriaType = "PARTICIPATION_COUNT"
	ATTENDANCE_COUNT    BadgeCriteriaType = "ATTENDANCE_COUNT"
	TOP_RANK            BadgeCriteriaType = "TOP_RANK"
)

type Badge struct {
	Id            int               `gorm:"primaryKey"`
	Name          string            `gorm:"uniqueIndex;not null"`
	Description   string            `gorm:"null"`
	Icon          string            `gorm:"not null;default:🏆"`
	CriteriaType  BadgeCriteriaType `gorm:"not null;type:badge_criteria_type"`
	CriteriaValue int               `gorm:"not null"`
	IsActive      bool              `gorm:"not null;default:true"`
	CreatedAt     time.Time
}

// StudentBadge records that a student satisfied a badge. A badge is earned
// at most once per student and never revoked.
type StudentBadge struct {
	StudentId int       `gorm:"primaryKey"`
	BadgeId   int       `gorm:"primaryKey"`
	Badge     *Badge    `gorm:"foreignKey:BadgeId;constraint:OnDelete:CASCADE"`
	EarnedAt  time.Time `gorm:"not null"`
}

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository() *BadgeRepository {
	return &BadgeRepository{DB: config.DatabaseConnection()}
}

func (r *BadgeRepository) GetBadgeById(badgeId int) (*Badge, error) {
	var badge Badge
	result := r.DB.First(&badge, "id = ?", badgeId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &badge, nil
}

func (r *BadgeRepository) GetActiveBadges() ([]*Badge, error) {
	var badges []*Badge
	result := r.DB.Order("name").Find(&badges, "is_active = ?", true)
	if result.Error != nil {
		return nil, result.Error
	}
	return badges, nil
}

func (r *BadgeRepository) FindAll() ([]*Badge, error) {
	var badges []*Badge
	result := r.DB.Order("name").Find(&badges)
	if result.Error != nil {
		return nil, result.Error
	}
	return badges, nil
}

func (r *BadgeRepository) Save(badge *Badge) (*Badge, error) {
	result := r.DB.Save(badge)
	if result.Error != nil {
		return nil, result.Error
	}
	return badge, nil
}

func (r *BadgeRepository) Delete(badgeId int) error {
	result := r.DB.Delete(&Badge{}, "id = ?", badgeId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BadgeRepository) GetEarnedBadgeIds(studentId int) (map[int]bool, error) {
	var studentBadges []*StudentBadge
	result := r.DB.Find(&studentBadges, "student_id = ?", studentId)
	if result.Error != nil {
		return nil, result.Error
	}
	earned := make(map[int]bool)
	for _, studentBadge := range studentBadges {
		earned[studentBadge.BadgeId] = true
	}
	return earned, nil
}

func (r *BadgeRepository) GetBadgesForStudent(studentId int) ([]*StudentBadge, error) {
	var studentBadges []*StudentBadge
	result := r.DB.Preload("Badge").Order("earned_at desc").Find(&studentBadges, "student_id = ?", studentId)
	if result.Error != nil {
		return nil, result.Error
	}
	return studentBadges, nil
}

// Award inserts the (student, badge) fact and reports whether this call won
// the insert. The primary key makes re-awarding a no-op, which keeps badge
// evaluation idempotent even under races.
func (r *BadgeRepository) Award(studentId int, badgeId int) (bool, error) {
	studentBadge := &StudentBadge{
		StudentId: studentId,
		BadgeId:   badgeId,
		EarnedAt:  time.Now(),
	}
	result := r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(studentBadge)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
