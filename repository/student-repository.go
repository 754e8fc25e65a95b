package repository

import (
	"time"

	"geeksboard/config"

	"gorm.io/gorm"
)

type Student struct {
	Id          int             `gorm:"primaryKey"`
	GroupId     int             `gorm:"not null;index"`
	FullName    string          `gorm:"not null"`
	BirthDate   *time.Time      `gorm:"null"`
	Phone       string          `gorm:"null"`
	ParentPhone string          `gorm:"null"`
	Notes       string          `gorm:"null"`
	Points      []*PointEvent   `gorm:"foreignKey:StudentId;constraint:OnDelete:CASCADE"`
	Badges      []*StudentBadge `gorm:"foreignKey:StudentId;constraint:OnDelete:CASCADE"`
}

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{DB: config.DatabaseConnection()}
}

func (r *StudentRepository) GetStudentsForGroup(groupId int) ([]*Student, error) {
	var students []*Student
	result := r.DB.Order("full_name").Find(&students, "group_id = ?", groupId)
	if result.Error != nil {
		return nil, result.Error
	}
	return students, nil
}

// GetStudentForMentor only returns the student if their group belongs to the mentor.
func (r *StudentRepository) GetStudentForMentor(studentId int, mentorId int) (*Student, error) {
	var student Student
	result := r.DB.Joins("JOIN groups ON groups.id = students.group_id").
		Where("students.id = ? AND groups.mentor_id = ?", studentId, mentorId).
		First(&student)
	if result.Error != nil {
		return nil, result.Error
	}
	return &student, nil
}

func (r *StudentRepository) GetStudentById(studentId int) (*Student, error) {
	var student Student
	result := r.DB.First(&student, "id = ?", studentId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &student, nil
}

func (r *StudentRepository) Save(student *Student) (*Student, error) {
	result := r.DB.Save(student)
	if result.Error != nil {
		return nil, result.Error
	}
	return student, nil
}

func (r *StudentRepository) Delete(studentId int, mentorId int) error {
	result := r.DB.
		Where("id = ? AND group_id IN (SELECT id FROM groups WHERE mentor_id = ?)", studentId, mentorId).
		Delete(&Student{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *StudentRepository) CountStudentsForMentor(mentorId int) (int64, error) {
	var count int64
	result := r.DB.Model(&Student{}).
		Joins("JOIN groups ON groups.id = students.group_id").
		Where("groups.mentor_id = ?", mentorId).
		Count(&count)
	return count, result.Error
}
