package store

import (
	"context"
	"errors"

	"telemetry/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DeviceStore struct{ db *gorm.DB }

func (s *Store) Devices() *DeviceStore { return &DeviceStore{db: s.DB} }

func (d *DeviceStore) Create(ctx context.Context, device *domain.Device) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	return translate(d.db.WithContext(ctx).Create(device).Error)
}

func (d *DeviceStore) GetBySerial(ctx context.Context, serial string) (*domain.Device, error) {
	var device domain.Device
	if err := d.db.WithContext(ctx).First(&device, "serial_number = ?", serial).Error; err != nil {
		return nil, translate(err)
	}
	return &device, nil
}

// GetOrCreateBySerial registers an unseen serial number exactly once. Two
// racing first-inserts resolve via the unique index on serial_number: the
// loser's insert is a no-op and it reads back the winner's row. The insert
// must not error on the conflict, because on Postgres a failed statement
// aborts the surrounding transaction.
func (d *DeviceStore) GetOrCreateBySerial(ctx context.Context, serial string) (*domain.Device, error) {
	device, err := d.GetBySerial(ctx, serial)
	if err == nil {
		return device, nil
	}
	if !errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}

	fresh := &domain.Device{ID: uuid.New(), SerialNumber: serial}
	res := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "serial_number"}},
		DoNothing: true,
	}).Create(fresh)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	if res.RowsAffected == 1 {
		return fresh, nil
	}
	return d.GetBySerial(ctx, serial)
}

// DeleteCascade removes a device together with its ownership links and event
// stream. Callers run it inside WithTx so the cascade is atomic.
func (d *DeviceStore) DeleteCascade(ctx context.Context, deviceID uuid.UUID) error {
	db := d.db.WithContext(ctx)
	if err := db.Where("device_id = ?", deviceID).Delete(&domain.Ownership{}).Error; err != nil {
		return translate(err)
	}
	if err := db.Where("device_id = ?", deviceID).Delete(&domain.DeviceEvent{}).Error; err != nil {
		return translate(err)
	}
	return translate(db.Delete(&domain.Device{}, "id = ?", deviceID).Error)
}
