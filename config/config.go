package config

import (
	"log"
	"os"

	"steakz-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs and verifies all tokens. Set via Load(); never hardcode
// it into handlers.
var JWTSecret []byte

// Load reads .env (if present) and process environment into package state.
// Must run before InitDB or any token operation.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "steakz_dev_secret_change_me"))
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "3000")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "steakz.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := AutoMigrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// AutoMigrate creates or updates the schema for every model. Exposed so
// tests can migrate their own databases.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.Employer{},
		&models.Customer{},
		&models.InventoryItem{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
