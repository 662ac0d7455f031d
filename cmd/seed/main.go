package main

import (
	"log"
	"os"

	"campus-ai-be/internal/model"
	"campus-ai-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeds the remote knowledge document registry. Payloads themselves live in
// the blob store under RAG_PAYLOAD_BASE_URL; this only registers their paths.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding knowledge document registry...")

	seedRagDocuments(db)

	color.Green("Done.")
}

func seedRagDocuments(db *gorm.DB) {
	docs := []model.RagDocument{
		{
			Title:      "Academic Holiday Calendar",
			Category:   "holiday",
			ActivePath: "rag/active/holiday_calendar.json",
			Enabled:    true,
			Tags:       datatypes.JSON([]byte(`{"year": "2025-26", "source": "registrar"}`)),
		},
		{
			Title:      "Exam Form Deadlines",
			Category:   "form",
			ActivePath: "rag/active/exam_forms.json",
			Enabled:    true,
			Tags:       datatypes.JSON([]byte(`{"source": "exam-cell"}`)),
		},
		{
			Title:      "Hostel and Mess Policies",
			Category:   "policy",
			ActivePath: "rag/active/hostel_policies.json",
			Enabled:    true,
			Tags:       datatypes.JSON([]byte(`{"source": "admin-office"}`)),
		},
		{
			Title:      "Semester Timetables",
			Category:   "timetable",
			ActivePath: "rag/active/timetables.json",
			Enabled:    false,
			Tags:       datatypes.JSON([]byte(`{"status": "draft"}`)),
		},
	}

	for _, doc := range docs {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "active_path"}},
			DoNothing: true,
		}).Create(&doc).Error
		if err != nil {
			color.Red("  failed: %s (%v)", doc.Title, err)
			continue
		}
		color.Green("  seeded: %s", doc.Title)
	}
}
