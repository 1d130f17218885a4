package main

import (
	"log"

	"communication-tracker-backend/internal/config"
	"communication-tracker-backend/internal/database"
	"communication-tracker-backend/internal/database/models"

	"github.com/joho/godotenv"
)

// defaultMethods is the outreach catalog a fresh deployment starts with. The
// first three steps of the cadence are mandatory.
var defaultMethods = []models.Method{
	{Name: "LinkedIn Post", Description: "Post on the company's LinkedIn page", Sequence: 1, Mandatory: true},
	{Name: "LinkedIn Message", Description: "Send a direct message on LinkedIn", Sequence: 2, Mandatory: true},
	{Name: "Email", Description: "Send an email to the main contact", Sequence: 3, Mandatory: true},
	{Name: "Phone Call", Description: "Call the primary phone number", Sequence: 4, Mandatory: false},
	{Name: "Other", Description: "Any other form of outreach", Sequence: 5, Mandatory: false},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseDriver, cfg.DSN(), nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	seeded := 0
	for _, method := range defaultMethods {
		var count int64
		if err := db.Model(&models.Method{}).Where("name = ?", method.Name).Count(&count).Error; err != nil {
			log.Fatalf("Failed to check method %q: %v", method.Name, err)
		}
		if count > 0 {
			log.Printf("Method %q already exists, skipping", method.Name)
			continue
		}
		if err := db.Create(&method).Error; err != nil {
			log.Fatalf("Failed to create method %q: %v", method.Name, err)
		}
		seeded++
	}

	log.Printf("Seeding complete: %d methods created, %d already present", seeded, len(defaultMethods)-seeded)
}
