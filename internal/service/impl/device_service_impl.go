package impl

import (
	"context"
	"errors"
	"strings"

	"telemetry/internal/domain"
	"telemetry/internal/service"
	"telemetry/internal/store"
)

type DeviceServiceImpl struct {
	store *store.Store
}

func NewDeviceServiceImpl(st *store.Store) *DeviceServiceImpl {
	return &DeviceServiceImpl{store: st}
}

var _ service.DeviceService = (*DeviceServiceImpl)(nil)

func (d *DeviceServiceImpl) Claim(ctx context.Context, userID domain.UserID, serialNumber string) (*domain.Device, error) {
	serial := strings.TrimSpace(serialNumber)
	if serial == "" {
		return nil, ErrEmptySerial
	}

	var device *domain.Device
	err := d.store.WithTx(ctx, func(tx *store.Store) error {
		dev, err := tx.Devices().GetOrCreateBySerial(ctx, serial)
		if err != nil {
			return err
		}
		if err := tx.Ownerships().Link(ctx, userID, dev.ID); err != nil {
			return err
		}
		device = dev
		return nil
	})
	if err != nil {
		return nil, err
	}
	return device, nil
}

func (d *DeviceServiceImpl) Release(ctx context.Context, userID domain.UserID, serialNumber string) error {
	device, err := resolveOwned(ctx, d.store, userID, serialNumber)
	if err != nil {
		return err
	}
	return d.store.Ownerships().Unlink(ctx, userID, device.ID)
}

func (d *DeviceServiceImpl) List(ctx context.Context, userID domain.UserID) ([]*domain.Device, error) {
	return d.store.Ownerships().DevicesOf(ctx, userID)
}

func (d *DeviceServiceImpl) Delete(ctx context.Context, userID domain.UserID, serialNumber string) error {
	return d.store.WithTx(ctx, func(tx *store.Store) error {
		device, err := resolveOwned(ctx, tx, userID, serialNumber)
		if err != nil {
			return err
		}
		return tx.Devices().DeleteCascade(ctx, device.ID)
	})
}

// resolveOwned looks up a device by serial number scoped to the caller's
// ownership. Missing devices and devices owned by someone else come back as
// the same ErrDeviceNotFound, so responses never confirm existence to
// non-owners.
func resolveOwned(ctx context.Context, st *store.Store, userID domain.UserID, serialNumber string) (*domain.Device, error) {
	serial := strings.TrimSpace(serialNumber)
	if serial == "" {
		return nil, ErrEmptySerial
	}
	device, err := st.Devices().GetBySerial(ctx, serial)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.ErrDeviceNotFound
		}
		return nil, err
	}
	owner, err := st.Ownerships().IsOwner(ctx, userID, device.ID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, domain.ErrDeviceNotFound
	}
	return device, nil
}
