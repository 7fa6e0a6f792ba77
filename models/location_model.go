package models

import "gorm.io/gorm"

type Location struct {
	gorm.Model
	Name      string `json:"name" gorm:"unique"`
	Address   string `json:"address"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
