package service

import (
	"geeksboard/repository"
)

type GroupService struct {
	groupRepository   *repository.GroupRepository
	studentRepository *repository.StudentRepository
}

func NewGroupService() *GroupService {
	return &GroupService{
		groupRepository:   repository.NewGroupRepository(),
		studentRepository: repository.NewStudentRepository(),
	}
}

func (e *GroupService) GetGroupsForMentor(mentorId int) ([]*repository.Group, error) {
	return e.groupRepository.GetGroupsForMentor(mentorId)
}

func (e *GroupService) GetGroupForMentor(groupId int, mentorId int, preloads ...string) (*repository.Group, error) {
	return e.groupRepository.GetGroupForMentor(groupId, mentorId, preloads...)
}

func (e *GroupService) SaveGroup(group *repository.Group) (*repository.Group, error) {
	return e.groupRepository.Save(group)
}

func (e *GroupService) DeleteGroup(groupId int, mentorId int) error {
	return e.groupRepository.Delete(groupId, mentorId)
}

func (e *GroupService) GetStudentsForGroup(groupId int, mentorId int) ([]*repository.Student, error) {
	if _, err := e.groupRepository.GetGroupForMentor(groupId, mentorId); err != nil {
		return nil, err
	}
	return e.studentRepository.GetStudentsForGroup(groupId)
}
