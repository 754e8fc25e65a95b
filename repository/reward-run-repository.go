package repository

import (
	"time"

	"geeksboard/config"

	"gorm.io/gorm"
)

// RewardRun is the idempotency record for the monthly reward job: one row
// per group per month, written after the group's rewards went out. A group
// that already has a row for the month is skipped on re-runs.
type RewardRun struct {
	Id               int    `gorm:"primaryKey"`
	GroupId          int    `gorm:"not null;uniqueIndex:idx_reward_runs_group_month"`
	Month            string `gorm:"not null;uniqueIndex:idx_reward_runs_group_month"`
	StudentsRewarded int    `gorm:"not null"`
	PointsAwarded    int    `gorm:"not null"`
	CreatedAt        time.Time
}

type RewardRunRepository struct {
	DB *gorm.DB
}

func NewRewardRunRepository() *RewardRunRepository {
	return &RewardRunRepository{DB: config.DatabaseConnection()}
}

func (r *RewardRunRepository) HasRun(groupId int, month string) (bool, error) {
	var count int64
	result := r.DB.Model(&RewardRun{}).
		Where("group_id = ? AND month = ?", groupId, month).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func (r *RewardRunRepository) RecordRun(run *RewardRun) error {
	return r.DB.Create(run).Error
}
