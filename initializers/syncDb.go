package initializers

import (
	"log"

	"github.com/ammafood/amma-api/models"
)

func SyncDatabase() {
	if DB == nil {
		return
	}
	err := DB.AutoMigrate(
		&models.MenuItem{},
		&models.Order{},
		&models.Announcement{},
		&models.PreviewVideo{},
		&models.AppSettings{},
		&models.AdminAccount{},
	)
	if err != nil {
		log.Println("Database migration failed:", err)
		return
	}
	log.Println("Database synced successfully.")
}
