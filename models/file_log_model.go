package models

import (
	"time"

	"gorm.io/gorm"
)

type FileLog struct {
	gorm.Model
	Filename     string `gorm:"unique;not null"`
	DateModified time.Time
}
