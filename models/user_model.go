package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username    string `json:"username" gorm:"unique"`
	Password    string `json:"password"`
	FullName    string `json:"full_name"`
	Email       string `json:"email" gorm:"unique"`
	Role        string `json:"role"`
	ContactInfo string `json:"contact_info"`
	LocationID  uint   `json:"location_id"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
