package dto

import "time"

// IngestEventRequest is the device-originated payload. happenedAt is the
// caller-reported occurrence time (RFC 3339); createdAt is assigned server
// side. Sensor fields are optional and independently nullable.
type IngestEventRequest struct {
	SerialNumber string   `json:"serialNumber"`
	MACAddress   string   `json:"macAddress"`
	IPAddress    string   `json:"ipAddress"`
	SoilMoisture *float64 `json:"soilMoisture,omitempty"`
	Humidity     *float64 `json:"humidity,omitempty"`
	Temperature  *float64 `json:"temperature,omitempty"`
	Light        *float64 `json:"light,omitempty"`
	HappenedAt   string   `json:"happenedAt"`
}

type EventResponse struct {
	ID           string    `json:"id"`
	DeviceID     string    `json:"deviceId"`
	MACAddress   string    `json:"macAddress"`
	IPAddress    string    `json:"ipAddress"`
	SoilMoisture *float64  `json:"soilMoisture"`
	Humidity     *float64  `json:"humidity"`
	Temperature  *float64  `json:"temperature"`
	Light        *float64  `json:"light"`
	HappenedAt   time.Time `json:"happenedAt"`
	CreatedAt    time.Time `json:"createdAt"`
}

type EventListResponse struct {
	Events []EventResponse `json:"events"`
}
