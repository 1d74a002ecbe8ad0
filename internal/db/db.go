package db

import (
	"log"
	"os"

	"findit/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=findit port=5432 sslmode=disable"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	SeedCategories(DB)
}

// Migrate applies the schema for every model.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.Claim{},
		&models.Message{},
		&models.Notification{},
		&models.ActivityLog{},
	)
}

// SeedCategories inserts the reference categories on first start.
func SeedCategories(conn *gorm.DB) {
	var count int64
	conn.Model(&models.Category{}).Count(&count)
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Name: "electronics", Emoji: "📱", Description: "Phones, laptops, tablets, and other electronic devices"},
		{Name: "accessories", Emoji: "👓", Description: "Glasses, watches, jewelry, and personal accessories"},
		{Name: "bags", Emoji: "🎒", Description: "Backpacks, handbags, luggage, and wallets"},
		{Name: "documents", Emoji: "🆔", Description: "IDs, passports, cards, and important papers"},
		{Name: "jewelry", Emoji: "💍", Description: "Rings, necklaces, bracelets, and valuable jewelry"},
		{Name: "clothing", Emoji: "👕", Description: "Jackets, shoes, hats, and clothing items"},
		{Name: "other", Emoji: "📦", Description: "Other items not listed in categories"},
	}

	for _, category := range categories {
		if err := conn.Create(&category).Error; err != nil {
			log.Printf("Failed to create category %s: %v", category.Name, err)
		}
	}
	log.Println("Initial categories created")
}
