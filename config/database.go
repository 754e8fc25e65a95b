package config

import (
	"fmt"
	"strings"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbConnection *gorm.DB
	onceDb       sync.Once
)

var enumQueries = []string{
	`CREATE TYPE badge_criteria_type AS ENUM ('TOTAL_POINTS', 'HOMEWORK_COMPLETION', 'PARTICIPATION_COUNT', 'ATTENDANCE_COUNT', 'TOP_RANK')`,
}

// DatabaseConnection returns the shared gorm connection, opening it on first use.
func DatabaseConnection() *gorm.DB {
	onceDb.Do(func() {
		cfg := Env()
		db, err := OpenDB(cfg.DatabaseHost, cfg.DatabasePort, cfg.PostgresUser, cfg.PostgresPassword, cfg.DatabaseName)
		if err != nil {
			panic(err)
		}
		dbConnection = db
	})
	return dbConnection
}

func OpenDB(host, port, user, password, dbName string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// CreateEnums creates the postgres enum types the models depend on.
// Safe to call repeatedly.
func CreateEnums(db *gorm.DB) error {
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}
	return nil
}
