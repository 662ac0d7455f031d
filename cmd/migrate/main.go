package main

import (
	"log"
	"os"

	"campus-ai-be/internal/model"
	"campus-ai-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions GORM AutoMigrate doesn't handle
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.InfraReport{},
		&model.WithdrawalRequest{},
		&model.RagDocument{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatal("Error: AutoMigrate failed:", err)
	}

	// 5. Post-Migration: constraints AutoMigrate can't express
	log.Println("Step 3: Applying constraints...")

	constraintSQL := []string{
		`ALTER TABLE users DROP CONSTRAINT IF EXISTS chk_users_credits_non_negative;`,
		`ALTER TABLE users ADD CONSTRAINT chk_users_credits_non_negative CHECK (credits >= 0);`,
	}

	for _, sql := range constraintSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to apply constraint: %v. Continuing...", err)
		}
	}

	log.Println("Migration complete.")
}
