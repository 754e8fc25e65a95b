package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestGroupOwnershipPartition(t *testing.T) {
	mentorOne, mentorTwo := SetUp()
	defer TearDown()
	groups := &GroupRepository{DB: db}

	group, err := groups.GetGroupForMentor(mentorOne.Groups[0].Id, mentorOne.Id)
	assert.Nil(t, err)
	assert.Equal(t, "group1", group.Name)

	_, err = groups.GetGroupForMentor(mentorOne.Groups[0].Id, mentorTwo.Id)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestGroupDeleteCascades(t *testing.T) {
	mentorOne, mentorTwo := SetUp()
	defer TearDown()
	groups := &GroupRepository{DB: db}

	err := groups.Delete(mentorOne.Groups[0].Id, mentorTwo.Id)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	err = groups.Delete(mentorOne.Groups[0].Id, mentorOne.Id)
	assert.Nil(t, err)

	var studentCount int64
	db.Model(&Student{}).Where("group_id = ?", mentorOne.Groups[0].Id).Count(&studentCount)
	assert.Equal(t, int64(0), studentCount, "students go with their group")
}

func TestStudentOwnership(t *testing.T) {
	mentorOne, mentorTwo := SetUp()
	defer TearDown()
	students := &StudentRepository{DB: db}

	student := mentorOne.Groups[0].Students[0]
	found, err := students.GetStudentForMentor(student.Id, mentorOne.Id)
	assert.Nil(t, err)
	assert.Equal(t, student.FullName, found.FullName)

	_, err = students.GetStudentForMentor(student.Id, mentorTwo.Id)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestGetStudentsForGroupOrdersByName(t *testing.T) {
	mentorOne, _ := SetUp()
	defer TearDown()
	students := &StudentRepository{DB: db}

	listed, err := students.GetStudentsForGroup(mentorOne.Groups[0].Id)
	assert.Nil(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, "Aziza", listed[0].FullName)
	assert.Equal(t, "Bobur", listed[1].FullName)
}
