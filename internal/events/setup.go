package events

import (
	"log"

	"github.com/EventCentral/EC-Backend/internal/db"
	"gorm.io/gorm"
)

func Init(d *gorm.DB) {
	if err := db.EnsureSchema(d, "app_events"); err != nil {
		log.Fatal("Failed to ensure schema app_events: ", err)
	}

	if err := d.AutoMigrate(&Event{}); err != nil {
		log.Fatal("Failed to auto-migrate event tables: ", err)
	}
}
