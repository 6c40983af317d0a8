package main

import (
	"log"

	"careerbridge.org/jobfairhub/internal/bootstrap"
	"careerbridge.org/jobfairhub/internal/config"
	"careerbridge.org/jobfairhub/internal/server"
	"careerbridge.org/jobfairhub/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.SeedRoles(db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}
	if err := bootstrap.SeedAdminUser(db); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	if err := bootstrap.SeedContent(db); err != nil {
		log.Fatalf("failed to seed site content: %v", err)
	}

	srv := server.NewServer(db)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
