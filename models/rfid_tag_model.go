package models

import "gorm.io/gorm"

const (
	TagStatusIdle  = "idle"
	TagStatusInuse = "inuse"
)

// RfidTag is the current state of one physical RFID-tagged bag. A tag row is
// never hard-deleted; clearing returns it to idle with an empty payload so the
// chip can be re-used for another shipment.
type RfidTag struct {
	gorm.Model
	TID             string  `json:"TID" gorm:"column:tid;uniqueIndex"`
	EPC             string  `json:"EPC" gorm:"column:epc"`
	ItemName        string  `json:"item_name"`
	Quantity        *int    `json:"quantity"`
	ItemDescription string  `json:"item_description"`
	Weight          float64 `json:"weight"`
	Status          string  `json:"status" gorm:"default:idle"`
	UpdatedBy       uint    `json:"updatedBy" gorm:"column:updated_by"`
	LastLocationID  uint    `json:"last_location_id"`
}
