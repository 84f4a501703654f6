package main

import (
	"log"

	"cooknextdoor/cmd/config"
	migration "cooknextdoor/cmd/database/migrate"
	"cooknextdoor/cmd/database/seed"
	"cooknextdoor/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, demo, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to open data store: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if demo {
		log.Println("running in demo mode with an in-memory store")
		if err := seed.Seed(db); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	port := utils.GetConfig("PORT")
	if port == "" {
		port = "5000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
