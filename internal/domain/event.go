package domain

import "time"

// DeviceEvent is one immutable sensor reading. HappenedAt is caller-reported
// and may be out of order relative to CreatedAt or to other events of the
// same device; CreatedAt is assigned at ingestion. Each sensor field is
// independently nullable: an absent or faulty sensor reports nothing.
type DeviceEvent struct {
	ID           EventID   `gorm:"type:uuid;primaryKey" db:"id" json:"id"`
	DeviceID     DeviceID  `gorm:"type:uuid;index:ix_device_events_device_happened,priority:1" db:"device_id" json:"deviceId"`
	MACAddress   string    `gorm:"type:text;not null" db:"mac_address" json:"macAddress"`
	IPAddress    string    `gorm:"type:inet" db:"ip_address" json:"ipAddress"`
	SoilMoisture *float64  `db:"soil_moisture" json:"soilMoisture"`
	Humidity     *float64  `db:"humidity" json:"humidity"`
	Temperature  *float64  `db:"temperature" json:"temperature"`
	Light        *float64  `db:"light" json:"light"`
	HappenedAt   time.Time `gorm:"not null;index:ix_device_events_device_happened,priority:2" db:"happened_at" json:"happenedAt"`
	CreatedAt    time.Time `gorm:"not null" db:"created_at" json:"createdAt"`
}

func (DeviceEvent) TableName() string { return "device_events" }
