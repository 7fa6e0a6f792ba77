package models

import (
	"rfid-app/types"

	"gorm.io/gorm"
)

type Manifest struct {
	gorm.Model
	ManifestNo  types.SnowflakeID `json:"manifest_no" gorm:"unique"`
	Origin      string            `json:"origin"`
	Destination string            `json:"destination"`
	Vehicle     string            `json:"vehicle"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
