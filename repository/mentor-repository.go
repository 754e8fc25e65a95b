package repository

import (
	"geeksboard/config"

	"gorm.io/gorm"
)

type Mentor struct {
	Id           int      `gorm:"primaryKey"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	FullName     string   `gorm:"not null"`
	Phone        string   `gorm:"null"`
	CenterName   string   `gorm:"null"`
	Bio          string   `gorm:"null"`
	Groups       []*Group `gorm:"foreignKey:MentorId;constraint:OnDelete:CASCADE"`
}

type MentorRepository struct {
	DB *gorm.DB
}

func NewMentorRepository() *MentorRepository {
	return &MentorRepository{DB: config.DatabaseConnection()}
}

func (r *MentorRepository) GetMentorById(mentorId int) (*Mentor, error) {
	var mentor Mentor
	result := r.DB.First(&mentor, "id = ?", mentorId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &mentor, nil
}

func (r *MentorRepository) GetMentorByEmail(email string) (*Mentor, error) {
	var mentor Mentor
	result := r.DB.First(&mentor, "email = ?", email)
	if result.Error != nil {
		return nil, result.Error
	}
	return &mentor, nil
}

func (r *MentorRepository) Save(mentor *Mentor) (*Mentor, error) {
	result := r.DB.Save(mentor)
	if result.Error != nil {
		return nil, result.Error
	}
	return mentor, nil
}
