package service

import (
	"context"

	"telemetry/internal/domain"
)

type DeviceService interface {
	// Claim registers the serial number if unseen and links it to the user.
	// Idempotent for repeat claims by the same user; a second user claiming
	// the same device adds another owner.
	Claim(ctx context.Context, userID domain.UserID, serialNumber string) (*domain.Device, error)
	// Release drops the caller's ownership link. Devices the caller does not
	// own are indistinguishable from nonexistent ones.
	Release(ctx context.Context, userID domain.UserID, serialNumber string) error
	// List returns the devices linked to the user.
	List(ctx context.Context, userID domain.UserID) ([]*domain.Device, error)
	// Delete removes an owned device with its links and event stream.
	Delete(ctx context.Context, userID domain.UserID, serialNumber string) error
}
