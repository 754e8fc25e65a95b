package service

import (
	"geeksboard/app_error"
	"geeksboard/auth"
	"geeksboard/repository"

	"gorm.io/gorm"
)

type MentorService struct {
	mentorRepository *repository.MentorRepository
}

func NewMentorService() *MentorService {
	return &MentorService{
		mentorRepository: repository.NewMentorRepository(),
	}
}

func (e *MentorService) Register(mentor *repository.Mentor, password string) (*repository.Mentor, error) {
	existing, err := e.mentorRepository.GetMentorByEmail(mentor.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, app_error.Validationf("email is already registered")
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	mentor.PasswordHash = hash
	return e.mentorRepository.Save(mentor)
}

func (e *MentorService) Authenticate(email string, password string) (*repository.Mentor, error) {
	mentor, err := e.mentorRepository.GetMentorByEmail(email)
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(mentor.PasswordHash, password) {
		return nil, app_error.Validationf("invalid credentials")
	}
	return mentor, nil
}

func (e *MentorService) GetMentorById(mentorId int) (*repository.Mentor, error) {
	return e.mentorRepository.GetMentorById(mentorId)
}
