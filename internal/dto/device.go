package dto

import "time"

type ClaimDeviceRequest struct {
	SerialNumber string `json:"serialNumber"`
}

type DeviceResponse struct {
	ID           string    `json:"id"`
	SerialNumber string    `json:"serialNumber"`
	CreatedAt    time.Time `json:"createdAt"`
}

type DeviceListResponse struct {
	Devices []DeviceResponse `json:"devices"`
}
