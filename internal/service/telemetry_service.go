package service

import (
	"context"

	"telemetry/internal/domain"
	"telemetry/internal/dto"
	"telemetry/internal/query"
)

type TelemetryService interface {
	// Ingest appends one event for the serial number in the payload,
	// registering the device on first sight.
	Ingest(ctx context.Context, r dto.IngestEventRequest) (*domain.DeviceEvent, error)
	// ListForOwner returns the events of an owned device inside the range.
	ListForOwner(ctx context.Context, userID domain.UserID, serialNumber string, r query.Range) ([]*domain.DeviceEvent, error)
}
