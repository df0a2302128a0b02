package store

import (
	"context"
	"time"

	"telemetry/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OwnershipStore struct{ db *gorm.DB }

func (s *Store) Ownerships() *OwnershipStore { return &OwnershipStore{db: s.DB} }

// Link records that userID owns deviceID. Idempotent: an existing pair is
// left untouched instead of failing the unique constraint.
func (o *OwnershipStore) Link(ctx context.Context, userID, deviceID uuid.UUID) error {
	link := &domain.Ownership{
		UserID:    userID,
		DeviceID:  deviceID,
		CreatedAt: time.Now().UTC(),
	}
	return translate(o.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
		DoNothing: true,
	}).Create(link).Error)
}

// Unlink removes the pair if present. Idempotent: absent links are not an error.
func (o *OwnershipStore) Unlink(ctx context.Context, userID, deviceID uuid.UUID) error {
	return translate(o.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Delete(&domain.Ownership{}).Error)
}

func (o *OwnershipStore) IsOwner(ctx context.Context, userID, deviceID uuid.UUID) (bool, error) {
	var count int64
	err := o.db.WithContext(ctx).Model(&domain.Ownership{}).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// DevicesOf lists the devices linked to userID, oldest claim first.
func (o *OwnershipStore) DevicesOf(ctx context.Context, userID uuid.UUID) ([]*domain.Device, error) {
	var devices []*domain.Device
	err := o.db.WithContext(ctx).
		Joins("JOIN ownerships ON ownerships.device_id = devices.id").
		Where("ownerships.user_id = ?", userID).
		Order("ownerships.created_at ASC").
		Find(&devices).Error
	if err != nil {
		return nil, translate(err)
	}
	return devices, nil
}
