package service

import (
	"geeksboard/repository"
)

type BadgeService struct {
	badgeRepository   *repository.BadgeRepository
	studentRepository *repository.StudentRepository
}

func NewBadgeService() *BadgeService {
	return &BadgeService{
		badgeRepository:   repository.NewBadgeRepository(),
		studentRepository: repository.NewStudentRepository(),
	}
}

func (e *BadgeService) GetBadges() ([]*repository.Badge, error) {
	return e.badgeRepository.FindAll()
}

func (e *BadgeService) GetBadgeById(badgeId int) (*repository.Badge, error) {
	return e.badgeRepository.GetBadgeById(badgeId)
}

func (e *BadgeService) SaveBadge(badge *repository.Badge) (*repository.Badge, error) {
	return e.badgeRepository.Save(badge)
}

func (e *BadgeService) DeleteBadge(badgeId int) error {
	return e.badgeRepository.Delete(badgeId)
}

func (e *BadgeService) GetBadgesForStudent(studentId int, mentorId int) ([]*repository.StudentBadge, error) {
	if _, err := e.studentRepository.GetStudentForMentor(studentId, mentorId); err != nil {
		return nil, err
	}
	return e.badgeRepository.GetBadgesForStudent(studentId)
}
