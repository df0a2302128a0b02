package domain

import "time"

type Device struct {
	ID           DeviceID  `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	SerialNumber string    `gorm:"type:text;uniqueIndex:ux_devices_serial" db:"serial_number" json:"serialNumber"`
	CreatedAt    time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (Device) TableName() string { return "devices" }

// Ownership links a user to a device. A device may carry zero links (created
// by its first ingestion event) or several (multi-owner is permitted).
type Ownership struct {
	UserID    UserID    `gorm:"type:uuid;primaryKey" db:"user_id" json:"userId"`
	DeviceID  DeviceID  `gorm:"type:uuid;primaryKey;index:ix_ownerships_device" db:"device_id" json:"deviceId"`
	CreatedAt time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (Ownership) TableName() string { return "ownerships" }
