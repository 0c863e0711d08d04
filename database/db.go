package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"entrega/config"
	"entrega/models"
)

// DB is the global database handle.
var DB *gorm.DB

// InitDB opens the Postgres connection and migrates the owned tables.
func InitDB() {
	db, err := gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to Postgres: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.DeliveryPreference{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	DB = db
	log.Println("Connected to Postgres successfully!")
}
