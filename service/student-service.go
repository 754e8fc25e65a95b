package service

import (
	"geeksboard/repository"
)

type StudentService struct {
	studentRepository *repository.StudentRepository
	groupRepository   *repository.GroupRepository
}

func NewStudentService() *StudentService {
	return &StudentService{
		studentRepository: repository.NewStudentRepository(),
		groupRepository:   repository.NewGroupRepository(),
	}
}

func (e *StudentService) GetStudentForMentor(studentId int, mentorId int) (*repository.Student, error) {
	return e.studentRepository.GetStudentForMentor(studentId, mentorId)
}

// SaveStudent checks that the target group belongs to the mentor before
// writing, so a mentor cannot place students into someone else's group.
func (e *StudentService) SaveStudent(student *repository.Student, mentorId int) (*repository.Student, error) {
	if _, err := e.groupRepository.GetGroupForMentor(student.GroupId, mentorId); err != nil {
		return nil, err
	}
	return e.studentRepository.Save(student)
}

func (e *StudentService) DeleteStudent(studentId int, mentorId int) error {
	return e.studentRepository.Delete(studentId, mentorId)
}
