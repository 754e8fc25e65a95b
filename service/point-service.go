package service

import (
	"time"

	"geeksboard/metrics"
	"geeksboard/repository"
)

type PointService struct {
	pointEventRepository *repository.PointEventRepository
	studentRepository    *repository.StudentRepository
}

func NewPointService() *PointService {
	return &PointService{
		pointEventRepository: repository.NewPointEventRepository(),
		studentRepository:    repository.NewStudentRepository(),
	}
}

func (e *PointService) AddPoints(event *repository.PointEvent, mentorId int) (*repository.PointEvent, error) {
	if _, err := e.studentRepository.GetStudentForMentor(event.StudentId, mentorId); err != nil {
		return nil, err
	}
	saved, err := e.pointEventRepository.Insert(event)
	if err != nil {
		return nil, err
	}
	metrics.PointEventCounter.WithLabelValues("mentor").Inc()
	return saved, nil
}

func (e *PointService) GetPointsForStudent(studentId int, mentorId int, start *time.Time, end *time.Time) ([]*repository.PointEvent, error) {
	if _, err := e.studentRepository.GetStudentForMentor(studentId, mentorId); err != nil {
		return nil, err
	}
	return e.pointEventRepository.GetEventsForStudent(studentId, start, end)
}

func (e *PointService) DeletePoint(eventId int, mentorId int) error {
	return e.pointEventRepository.Delete(eventId, mentorId)
}
