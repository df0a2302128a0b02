package store

import (
	"context"
	"errors"

	"telemetry/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
)

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{DB: db} }

func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{DB: tx})
	})
}

// AutoMigrate creates or updates the schema for every model the store owns.
func (s *Store) AutoMigrate() error {
	return s.DB.AutoMigrate(
		&domain.User{},
		&domain.Device{},
		&domain.Ownership{},
		&domain.DeviceEvent{},
	)
}

// translate maps gorm sentinels to store sentinels so callers never import
// gorm to branch on storage outcomes.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
