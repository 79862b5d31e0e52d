package registration

import (
	"log"

	"github.com/EventCentral/EC-Backend/internal/db"
	"gorm.io/gorm"
)

func Init(d *gorm.DB) {
	if err := db.EnsureSchema(d, "app_registration"); err != nil {
		log.Fatal("Failed to ensure schema app_registration: ", err)
	}

	if err := d.AutoMigrate(&Registration{}); err != nil {
		log.Fatal("Failed to auto-migrate registration tables: ", err)
	}
}
