package main

import (
	"log"
	"time"

	"condoapp/internal/config"
	"condoapp/internal/database"
	"condoapp/internal/devbackend"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	backendCfg, err := config.LoadBackendConfig()
	if err != nil {
		log.Fatal(err)
	}
	appCfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(backendCfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	report, err := devbackend.Seed(db, appCfg.OfficialUserID, time.Now().UTC())
	if err != nil {
		log.Fatal("Seed failed:", err)
	}

	log.Println("Seed completed!")
	log.Printf("Condominium token: %s", report.CondominiumToken)
	log.Printf("Syndic: %s / %s", report.SyndicEmail, devbackend.SeedPassword)
	for _, email := range report.ResidentEmails {
		log.Printf("Resident: %s / %s", email, devbackend.SeedPassword)
	}
	log.Printf("Building account id: %d", report.OfficialUserID)
}
