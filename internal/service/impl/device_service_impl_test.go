package impl

import (
	"context"
	"errors"
	"testing"

	"telemetry/internal/domain"

	"github.com/google/uuid"
)

func TestClaimIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	devices := NewDeviceServiceImpl(st)
	ctx := context.Background()
	owner := uuid.New()

	first, err := devices.Claim(ctx, owner, "SN-0001")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	second, err := devices.Claim(ctx, owner, "SN-0001")
	if err != nil {
		t.Fatalf("repeat Claim: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("repeat claim returned a different device: %v vs %v", first.ID, second.ID)
	}

	list, err := devices.List(ctx, owner)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("owned devices = %d, want 1", len(list))
	}
	if list[0].SerialNumber != "SN-0001" {
		t.Fatalf("serial = %q", list[0].SerialNumber)
	}
}

func TestClaimSharedDevice(t *testing.T) {
	st := newTestStore(t)
	devices := NewDeviceServiceImpl(st)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	d1, err := devices.Claim(ctx, alice, "SN-SHARED")
	if err != nil {
		t.Fatalf("alice Claim: %v", err)
	}
	d2, err := devices.Claim(ctx, bob, "SN-SHARED")
	if err != nil {
		t.Fatalf("bob Claim: %v", err)
	}
	if d1.ID != d2.ID {
		t.Fatalf("same serial produced two devices: %v vs %v", d1.ID, d2.ID)
	}

	for _, owner := range []domain.UserID{alice, bob} {
		list, err := devices.List(ctx, owner)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(list) != 1 || list[0].ID != d1.ID {
			t.Fatalf("owner %v does not see the shared device: %+v", owner, list)
		}
	}
}

func TestReleaseDevice(t *testing.T) {
	st := newTestStore(t)
	devices := NewDeviceServiceImpl(st)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	if _, err := devices.Claim(ctx, alice, "SN-REL"); err != nil {
		t.Fatalf("alice Claim: %v", err)
	}
	if _, err := devices.Claim(ctx, bob, "SN-REL"); err != nil {
		t.Fatalf("bob Claim: %v", err)
	}

	if err := devices.Release(ctx, alice, "SN-REL"); err != nil {
		t.Fatalf("Release: %v", err)
	}
	list, err := devices.List(ctx, alice)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("alice still owns %d devices after release", len(list))
	}

	// Bob's link survives; alice can no longer address the device.
	if list, err = devices.List(ctx, bob); err != nil || len(list) != 1 {
		t.Fatalf("bob's list after alice's release: %v, %v", list, err)
	}
	if err := devices.Release(ctx, alice, "SN-REL"); !errors.Is(err, domain.ErrDeviceNotFound) {
		t.Fatalf("repeat Release: want ErrDeviceNotFound, got %v", err)
	}
}

func TestDeviceNotFoundParity(t *testing.T) {
	st := newTestStore(t)
	devices := NewDeviceServiceImpl(st)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	if _, err := devices.Claim(ctx, alice, "SN-ALICE"); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	// Bob gets the same error for a device he does not own and for one that
	// does not exist at all.
	errForeign := devices.Release(ctx, bob, "SN-ALICE")
	errMissing := devices.Release(ctx, bob, "SN-NO-SUCH")
	if !errors.Is(errForeign, domain.ErrDeviceNotFound) {
		t.Fatalf("foreign device: want ErrDeviceNotFound, got %v", errForeign)
	}
	if !errors.Is(errMissing, domain.ErrDeviceNotFound) {
		t.Fatalf("missing device: want ErrDeviceNotFound, got %v", errMissing)
	}
	if errForeign.Error() != errMissing.Error() {
		t.Fatalf("error messages differ: %q vs %q", errForeign, errMissing)
	}
}

func TestDeleteDeviceCascades(t *testing.T) {
	st := newTestStore(t)
	devices := NewDeviceServiceImpl(st)
	telemetry := NewTelemetryServiceImpl(st)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	if _, err := devices.Claim(ctx, alice, "SN-DEL"); err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if _, err := devices.Claim(ctx, bob, "SN-DEL"); err != nil {
		t.Fatalf("bob Claim: %v", err)
	}
	if _, err := telemetry.Ingest(ctx, ingestRequest("SN-DEL", "2026-03-01T10:00:00Z")); err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if err := devices.Delete(ctx, alice, "SN-DEL"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	for model, name := range map[any]string{
		&domain.Device{}:      "devices",
		&domain.Ownership{}:   "ownerships",
		&domain.DeviceEvent{}: "device_events",
	} {
		var count int64
		if err := st.DB.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		if count != 0 {
			t.Errorf("%s left after delete: %d", name, count)
		}
	}

	if err := devices.Delete(ctx, alice, "SN-DEL"); !errors.Is(err, domain.ErrDeviceNotFound) {
		t.Fatalf("repeat Delete: want ErrDeviceNotFound, got %v", err)
	}
}

func TestClaimValidation(t *testing.T) {
	st := newTestStore(t)
	devices := NewDeviceServiceImpl(st)

	if _, err := devices.Claim(context.Background(), uuid.New(), "   "); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank serial: want validation error, got %v", err)
	}
}
