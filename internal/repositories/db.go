package repositories

import (
	"fmt"
	"log"

	"github.com/mixmini/mixmini/internal/config"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase() {
	dsn := DSN(config.Envs.DBPath)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = db
	log.Println("Successfully connected to database:", config.Envs.DBPath)
}

// DSN builds the SQLite connection string. Foreign keys are off by
// default in SQLite; the cascades in the schema depend on them.
func DSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
}
