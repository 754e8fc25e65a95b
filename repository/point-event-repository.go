package repository

import (
	"time"

	"geeksboard/app_error"
	"geeksboard/config"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Reason tag that marks events written by the monthly reward job.
const MonthlyRewardReason = "Monthly Reward"

type PointEvent struct {
	Id         int            `gorm:"primaryKey"`
	StudentId  int            `gorm:"not null;index"`
	CategoryId int            `gorm:"not null"`
	Category   *PointCategory `gorm:"foreignKey:CategoryId;constraint:OnDelete:CASCADE"`
	Score      int            `gorm:"not null"`
	Reason     string         `gorm:"null"`
	Note       string         `gorm:"null"`
	Timestamp  time.Time      `gorm:"not null;index"`
}

type PointEventRepository struct {
	DB *gorm.DB
}

func NewPointEventRepository() *PointEventRepository {
	return &PointEventRepository{DB: config.DatabaseConnection()}
}

// Insert validates the event against its category bound before writing.
// Events are immutable once written; deletion is the only retraction.
func (r *PointEventRepository) Insert(event *PointEvent) (*PointEvent, error) {
	var category PointCategory
	if err := r.DB.First(&category, "id = ?", event.CategoryId).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, app_error.NotFound("category")
		}
		return nil, err
	}
	absScore := event.Score
	if absScore < 0 {
		absScore = -absScore
	}
	if absScore > category.MaxScore {
		return nil, app_error.Validationf("absolute score cannot exceed category max score (%d)", category.MaxScore)
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	result := r.DB.Create(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *PointEventRepository) GetEventsForStudent(studentId int, start *time.Time, end *time.Time) ([]*PointEvent, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GetEventsForStudent"))
	defer timer.ObserveDuration()
	query := r.DB.Preload("Category").Where("student_id = ?", studentId)
	if start != nil {
		query = query.Where("timestamp >= ?", *start)
	}
	if end != nil {
		query = query.Where("timestamp < ?", *end)
	}
	var events []*PointEvent
	result := query.Order("timestamp desc").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *PointEventRepository) GetRecentEventsForMentor(mentorId int, limit int) ([]*PointEvent, error) {
	var events []*PointEvent
	result := r.DB.Preload("Category").
		Joins("JOIN students ON students.id = point_events.student_id").
		Joins("JOIN groups ON groups.id = students.group_id").
		Where("groups.mentor_id = ?", mentorId).
		Order("point_events.timestamp desc").
		Limit(limit).
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *PointEventRepository) CountEventsForMentor(mentorId int) (int64, error) {
	var count int64
	result := r.DB.Model(&PointEvent{}).
		Joins("JOIN students ON students.id = point_events.student_id").
		Joins("JOIN groups ON groups.id = students.group_id").
		Where("groups.mentor_id = ?", mentorId).
		Count(&count)
	return count, result.Error
}

// Delete removes the event only when it belongs to one of the mentor's students.
func (r *PointEventRepository) Delete(eventId int, mentorId int) error {
	result := r.DB.
		Where(`id = ? AND student_id IN (
			SELECT students.id FROM students
			JOIN groups ON groups.id = students.group_id
			WHERE groups.mentor_id = ?)`, eventId, mentorId).
		Delete(&PointEvent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
