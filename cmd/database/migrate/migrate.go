package migration

import (
	"fmt"
	"log"

	"cooknextdoor/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Printf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Meal{}); err != nil {
		log.Printf("Error migrating meal database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Order{}); err != nil {
		log.Printf("Error migrating order database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
