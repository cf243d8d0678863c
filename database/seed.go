package database

import (
	"github.com/lastortilhas/restaurant-api/config"
	"github.com/lastortilhas/restaurant-api/models"
	"github.com/lastortilhas/restaurant-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed provisions the admin account and default menu categories on an
// empty database. Safe to run on every startup.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := seedAdmin(db, cfg); err != nil {
		return err
	}
	return seedCategories(db)
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		utils.InfoLogger.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:     cfg.AdminEmail,
		Username:  "admin",
		Password:  string(hashed),
		FirstName: "Admin",
		LastName:  "Las Tortilhas",
		Role:      models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded admin account: %s", cfg.AdminEmail)
	return nil
}

func seedCategories(db *gorm.DB) error {
	var count int64
	db.Model(&models.MenuCategory{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []models.MenuCategory{
		{Name: "Entradas", NameEn: "Starters", Slug: "entradas", Order: 1},
		{Name: "Tacos", NameEn: "Tacos", Slug: "tacos", Order: 2},
		{Name: "Pratos Principais", NameEn: "Main Dishes", Slug: "pratos-principais", Order: 3},
		{Name: "Sobremesas", NameEn: "Desserts", Slug: "sobremesas", Order: 4},
		{Name: "Bebidas", NameEn: "Drinks", Slug: "bebidas", Order: 5},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	utils.InfoLogger.Printf("Seeded %d default menu categories", len(categories))
	return nil
}
