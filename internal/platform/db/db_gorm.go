package db

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "weather_app/internal/feature/auth/domain/entity"
	historyentity "weather_app/internal/feature/history/domain/entity"
)

// OpenDB opens the SQLite database file and creates missing tables.
// Migration is idempotent: existing tables and rows are left untouched.
// The path comes from DB_PATH, defaulting to weather_app.db in the
// working directory.
func OpenDB() *gorm.DB {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "weather_app.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open database %s: %v", path, err)
	}

	// マイグレーション（User, SearchHistory）
	if err := db.AutoMigrate(
		&authentity.User{},
		&historyentity.SearchHistory{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
