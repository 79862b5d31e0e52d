package auth

import (
	"log"

	"github.com/EventCentral/EC-Backend/internal/db"
	"gorm.io/gorm"
)

func Init(d *gorm.DB) {
	if err := db.EnsureSchema(d, "app_auth"); err != nil {
		log.Fatal("Failed to ensure schema app_auth: ", err)
	}

	if err := d.AutoMigrate(&User{}); err != nil {
		log.Fatal("Failed to auto-migrate auth tables: ", err)
	}
}
