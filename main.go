package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/lastortilhas/restaurant-api/config"
	"github.com/lastortilhas/restaurant-api/database"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/router"
	"github.com/lastortilhas/restaurant-api/services"
	"github.com/lastortilhas/restaurant-api/utils"
	"gorm.io/gorm"
)

func init() {
	// Load .env before anything reads the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	autoMigrate(db)

	if err := database.Seed(db, cfg); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
	}

	sessions := services.NewGormSessionStore(db, cfg.SessionTTL)

	r := router.SetupRouter(db, sessions, cfg)
	r.SetTrustedProxies([]string{"127.0.0.1"})

	utils.InfoLogger.Printf("Las Tortilhas API listening on port %s (%s, db=%s, implicit registration=%v)",
		cfg.Port, cfg.Env, cfg.DBDriver, cfg.AllowImplicitRegistration)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.ContactMessage{},
		&models.GalleryImage{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
