package service

import (
	"geeksboard/repository"
)

type DashboardService struct {
	groupRepository      *repository.GroupRepository
	studentRepository    *repository.StudentRepository
	pointEventRepository *repository.PointEventRepository
}

func NewDashboardService() *DashboardService {
	return &DashboardService{
		groupRepository:      repository.NewGroupRepository(),
		studentRepository:    repository.NewStudentRepository(),
		pointEventRepository: repository.NewPointEventRepository(),
	}
}

type DashboardStats struct {
	GroupCount   int   `json:"group_count"`
	StudentCount int64 `json:"student_count"`
	PointEntries int64 `json:"point_entries"`
}

func (e *DashboardService) GetStats(mentorId int) (*DashboardStats, error) {
	groups, err := e.groupRepository.GetGroupsForMentor(mentorId)
	if err != nil {
		return nil, err
	}
	studentCount, err := e.studentRepository.CountStudentsForMentor(mentorId)
	if err != nil {
		return nil, err
	}
	eventCount, err := e.pointEventRepository.CountEventsForMentor(mentorId)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{
		GroupCount:   len(groups),
		StudentCount: studentCount,
		PointEntries: eventCount,
	}, nil
}

func (e *DashboardService) GetRecentPoints(mentorId int, limit int) ([]*repository.PointEvent, error) {
	return e.pointEventRepository.GetRecentEventsForMentor(mentorId, limit)
}
