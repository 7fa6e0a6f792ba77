// database/migrate.go
package database

import (
	"rfid-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Manifest{},
		&models.RfidTag{},
		&models.Loading{},
		&models.Receive{},
		&models.FileLog{},
	)
}
