package models

import (
	"time"

	"gorm.io/gorm"
)

const LoadingStatusLoaded = "Loaded"

// Loading is one vehicle-loading event of a bag against a manifest.
type Loading struct {
	gorm.Model
	ManifestID    uint       `json:"manifestId"`
	RfidTagID     uint       `json:"rfidTagId"`
	Vehicle       string     `json:"vehicle"`
	LoadedBy      uint       `json:"loadedBy"`
	Status        string     `json:"status"`
	LoadStartTime time.Time  `json:"loadStartTime"`
	LoadEndTime   *time.Time `json:"loadEndTime"`
}
