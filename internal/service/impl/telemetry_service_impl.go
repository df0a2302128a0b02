package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"telemetry/internal/domain"
	"telemetry/internal/dto"
	"telemetry/internal/netutil"
	"telemetry/internal/observability/metrics"
	"telemetry/internal/query"
	"telemetry/internal/service"
	"telemetry/internal/store"
)

type TelemetryServiceImpl struct {
	store *store.Store
	now   func() time.Time
}

func NewTelemetryServiceImpl(st *store.Store) *TelemetryServiceImpl {
	return &TelemetryServiceImpl{
		store: st,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

var _ service.TelemetryService = (*TelemetryServiceImpl)(nil)

func (t *TelemetryServiceImpl) Ingest(ctx context.Context, r dto.IngestEventRequest) (*domain.DeviceEvent, error) {
	result := "success"
	defer func() { metrics.EventsIngestedTotal.WithLabelValues(result).Inc() }()

	serial := strings.TrimSpace(r.SerialNumber)
	if serial == "" {
		result = "failure"
		return nil, ErrEmptySerial
	}
	mac, ok := netutil.NormalizeMAC(r.MACAddress)
	if !ok {
		result = "failure"
		return nil, fmt.Errorf("%w: invalid macAddress %q", domain.ErrValidation, r.MACAddress)
	}
	ip, ok := netutil.NormalizeIP(r.IPAddress)
	if !ok {
		result = "failure"
		return nil, fmt.Errorf("%w: invalid ipAddress %q", domain.ErrValidation, r.IPAddress)
	}
	if r.HappenedAt == "" {
		result = "failure"
		return nil, ErrEmptyHappenedAt
	}
	happenedAt, err := time.Parse(time.RFC3339, r.HappenedAt)
	if err != nil {
		result = "failure"
		return nil, fmt.Errorf("%w: invalid happenedAt %q", domain.ErrValidation, r.HappenedAt)
	}

	event := &domain.DeviceEvent{
		MACAddress:   mac,
		IPAddress:    ip,
		SoilMoisture: r.SoilMoisture,
		Humidity:     r.Humidity,
		Temperature:  r.Temperature,
		Light:        r.Light,
		HappenedAt:   happenedAt.UTC(),
		CreatedAt:    t.now(),
	}
	err = t.store.WithTx(ctx, func(tx *store.Store) error {
		device, err := tx.Devices().GetOrCreateBySerial(ctx, serial)
		if err != nil {
			return err
		}
		event.DeviceID = device.ID
		return tx.Events().Append(ctx, event)
	})
	if err != nil {
		result = "failure"
		return nil, err
	}
	return event, nil
}

func (t *TelemetryServiceImpl) ListForOwner(ctx context.Context, userID domain.UserID, serialNumber string, r query.Range) ([]*domain.DeviceEvent, error) {
	result := "success"
	defer func() { metrics.EventQueriesTotal.WithLabelValues(result).Inc() }()

	device, err := resolveOwned(ctx, t.store, userID, serialNumber)
	if err != nil {
		result = "failure"
		return nil, err
	}
	events, err := t.store.Events().ListByDevice(ctx, device.ID, r)
	if err != nil {
		result = "failure"
		return nil, err
	}
	return events, nil
}
