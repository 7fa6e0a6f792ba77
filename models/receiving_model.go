package models

import (
	"time"

	"gorm.io/gorm"
)

// Receive is one receipt event of a bag at a location. A bag may be received
// once; any existing row for the same tag blocks a new receipt.
type Receive struct {
	gorm.Model
	RfidTagID    uint      `json:"rfidTagId"`
	LocationID   uint      `json:"locationId"`
	ReceivedBy   uint      `json:"receivedBy"`
	Status       string    `json:"status"`
	ReceivedTime time.Time `json:"receivedTime"`
}
