package repository

import (
	"log"
	"testing"
	"time"

	"geeksboard/app_error"
	"geeksboard/config"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes

	if err := pool.Retry(func() error {
		var err error
		db, err = config.OpenDB("localhost", resource.GetPort("5432/tcp"), "postgres", "postgres", "postgres")
		if err != nil {
			return err
		}
		if err := config.CreateEnums(db); err != nil {
			return err
		}
		return Migrate(db)
	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func TearDown() {
	db.Exec("DELETE FROM student_badges")
	db.Exec("DELETE FROM badges")
	db.Exec("DELETE FROM point_events")
	db.Exec("DELETE FROM reward_runs")
	db.Exec("DELETE FROM point_categories")
	db.Exec("DELETE FROM students")
	db.Exec("DELETE FROM groups")
	db.Exec("DELETE FROM mentors")
}

// SetUp creates two mentors so the ownership partition can be exercised.
func SetUp() (*Mentor, *Mentor) {
	mentorOne := &Mentor{
		Email:        "one@example.com",
		PasswordHash: "irrelevant",
		FullName:     "Mentor One",
		Groups: []*Group{
			{
				Name: "group1",
				Students: []*Student{
					{FullName: "Aziza"},
					{FullName: "Bobur"},
				},
			},
		},
	}
	mentorTwo := &Mentor{
		Email:        "two@example.com",
		PasswordHash: "irrelevant",
		FullName:     "Mentor Two",
		Groups: []*Group{
			{
				Name: "group1",
				Students: []*Student{
					{FullName: "Davron"},
				},
			},
		},
	}
	if err := db.Create([]*Mentor{mentorOne, mentorTwo}).Error; err != nil {
		log.Fatalf("Error creating mentors: %v", err)
	}
	category := &PointCategory{Name: "Homework", Slug: SlugHomework, MaxScore: 10, IsActive: true}
	if err := db.Create(category).Error; err != nil {
		log.Fatalf("Error creating category: %v", err)
	}
	return mentorOne, mentorTwo
}

func homeworkCategory() *PointCategory {
	var category PointCategory
	if err := db.First(&category, "slug = ?", SlugHomework).Error; err != nil {
		log.Fatalf("Error fetching category: %v", err)
	}
	return &category
}

func TestInsertValidatesScoreBound(t *testing.T) {
	mentorOne, _ := SetUp()
	defer TearDown()
	student := mentorOne.Groups[0].Students[0]
	category := homeworkCategory()
	events := &PointEventRepository{DB: db}

	// at the bound is fine, in both directions
	_, err := events.Insert(&PointEvent{StudentId: student.Id, CategoryId: category.Id, Score: 10})
	assert.Nil(t, err)
	_, err = events.Insert(&PointEvent{StudentId: student.Id, CategoryId: category.Id, Score: -10})
	assert.Nil(t, err)

	_, err = events.Insert(&PointEvent{StudentId: student.Id, CategoryId: category.Id, Score: 11})
	assert.NotNil(t, err)
	var validationErr *app_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = events.Insert(&PointEvent{StudentId: student.Id, CategoryId: category.Id, Score: -11})
	assert.NotNil(t, err)
}

func TestInsertUnknownCategory(t *testing.T) {
	mentorOne, _ := SetUp()
	defer TearDown()
	student := mentorOne.Groups[0].Students[0]
	events := &PointEventRepository{DB: db}

	_, err := events.Insert(&PointEvent{StudentId: student.Id, CategoryId: 99999, Score: 5})
	var notFoundErr *app_error.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestInsertDefaultsTimestamp(t *testing.T) {
	mentorOne, _ := SetUp()
	defer TearDown()
	student := mentorOne.Groups[0].Students[0]
	category := homeworkCategory()
	events := &PointEventRepository{DB: db}

	before := time.Now()
	event, err := events.Insert(&PointEvent{StudentId: student.Id, CategoryId: category.Id, Score: 5})
	assert.Nil(t, err)
	assert.False(t, event.Timestamp.Before(before))
}

func TestGetEventsForStudentOrdering(t *testing.T) {
	mentorOne, _ := SetUp()
	defer TearDown()
	student := mentorOne.Groups[0].Students[0]
	category := homeworkCategory()
	events := &PointEventRepository{DB: db}

	earlier := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	events.Insert(&PointEvent{StudentId: student.Id, CategoryId: category.Id, Score: 3, Timestamp: earlier})
	events.Insert(&PointEvent{StudentId: student.Id, CategoryId: category.Id, Score: 5, Timestamp: later})

	history, err := events.GetEventsForStudent(student.Id, nil, nil)
	assert.Nil(t, err)
	assert.Len(t, history, 2)
	assert.Equal(t, 5, history[0].Score, "newest first")
	assert.NotNil(t, history[0].Category, "category comes preloaded")
	assert.Equal(t, "Homework", history[0].Category.Name)
}

func TestDeletePointOwnership(t *testing.T) {
	mentorOne, mentorTwo := SetUp()
	defer TearDown()
	student := mentorOne.Groups[0].Students[0]
	category := homeworkCategory()
	events := &PointEventRepository{DB: db}

	event, err := events.Insert(&PointEvent{StudentId: student.Id, CategoryId: category.Id, Score: 5})
	assert.Nil(t, err)

	err = events.Delete(event.Id, mentorTwo.Id)
	assert.Equal(t, gorm.ErrRecordNotFound, err, "another mentor cannot delete the entry")

	err = events.Delete(event.Id, mentorOne.Id)
	assert.Nil(t, err)
}
