package repository

import (
	"time"

	"geeksboard/config"

	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type Group struct {
	Id           int            `gorm:"primaryKey"`
	MentorId     int            `gorm:"not null;uniqueIndex:idx_groups_mentor_name"`
	Name         string         `gorm:"not null;uniqueIndex:idx_groups_mentor_name"`
	Subject      string         `gorm:"null"`
	ScheduleDays pq.StringArray `gorm:"type:text[]"`
	StartDate    *time.Time     `gorm:"null"`
	Students     []*Student     `gorm:"foreignKey:GroupId;constraint:OnDelete:CASCADE"`
}

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{DB: config.DatabaseConnection()}
}

func (r *GroupRepository) GetGroupsForMentor(mentorId int) ([]*Group, error) {
	var groups []*Group
	result := r.DB.Order("name").Find(&groups, "mentor_id = ?", mentorId)
	if result.Error != nil {
		return nil, result.Error
	}
	return groups, nil
}

// GetGroupForMentor only returns the group if it belongs to the mentor.
func (r *GroupRepository) GetGroupForMentor(groupId int, mentorId int, preloads ...string) (*Group, error) {
	var group Group
	query := r.DB
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&group, "id = ? AND mentor_id = ?", groupId, mentorId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &group, nil
}

func (r *GroupRepository) Save(group *Group) (*Group, error) {
	result := r.DB.Save(group)
	if result.Error != nil {
		return nil, result.Error
	}
	return group, nil
}

func (r *GroupRepository) Delete(groupId int, mentorId int) error {
	result := r.DB.Delete(&Group{}, "id = ? AND mentor_id = ?", groupId, mentorId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GroupRepository) FindAll() ([]*Group, error) {
	timer := prometheus.NewTimer(queryDuration.WithLabelValues("GroupFindAll"))
	defer timer.ObserveDuration()
	var groups []*Group
	result := r.DB.Order("id").Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}
	return groups, nil
}
