package store

import (
	"context"

	"telemetry/internal/domain"
	"telemetry/internal/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventStore struct{ db *gorm.DB }

func (s *Store) Events() *EventStore { return &EventStore{db: s.DB} }

// Append persists one immutable event. Rows are never updated afterwards.
func (e *EventStore) Append(ctx context.Context, ev *domain.DeviceEvent) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	return translate(e.db.WithContext(ctx).Create(ev).Error)
}

// ListByDevice returns the device's events inside r, ordered by occurrence
// time. No default window: an unbounded r returns the full history.
func (e *EventStore) ListByDevice(ctx context.Context, deviceID uuid.UUID, r query.Range) ([]*domain.DeviceEvent, error) {
	var events []*domain.DeviceEvent
	err := e.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Scopes(r.Scope).
		Order("happened_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, translate(err)
	}
	return events, nil
}
