package config

import (
	"fmt"
	"log"

	"cooknextdoor/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB selects the store exactly once, at startup. Route logic never
// branches on database availability: either postgres is configured and
// reachable, or the process runs on a seeded in-memory store (demo mode).
// The returned flag reports demo mode so the caller can seed fixtures.
func ConnectDB() (*gorm.DB, bool, error) {
	if utils.GetConfig("DEMO_MODE") == "true" || utils.GetConfig("DB_HOST") == "" {
		db, err := connectDemoDB()
		return db, true, err
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Database connection failed, falling back to demo mode: %v", err)
		demoDB, demoErr := connectDemoDB()
		return demoDB, true, demoErr
	}
	return db, false, nil
}

func connectDemoDB() (*gorm.DB, error) {
	return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
}
