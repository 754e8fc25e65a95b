package repository

import "gorm.io/gorm"

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Mentor{},
		&Group{},
		&Student{},
		&PointCategory{},
		&PointEvent{},
		&Badge{},
		&StudentBadge{},
		&RewardRun{},
	)
}
