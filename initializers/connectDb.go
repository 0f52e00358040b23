package initializers

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the optional remote tier. It stays nil when no DSN is configured or
// the connection fails; the app then runs in local-only mode.
var DB *gorm.DB

func ConnectToDB() {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Println("DB_DSN not set, running in local-only mode.")
		return
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Println("Database connection failed, falling back to local-only mode:", err)
		return
	}
	DB = db
	log.Println("Connected to database.")
}
