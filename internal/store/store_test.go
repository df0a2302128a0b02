package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"telemetry/internal/domain"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	st := New(db)
	if err := st.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

func TestUserStoreUniqueEmail(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	if err := st.Users().Create(ctx, &domain.User{Email: "a@example.com", PasswordDigest: "x"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := st.Users().Create(ctx, &domain.User{Email: "a@example.com", PasswordDigest: "y"})
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate Create: want ErrDuplicateKey, got %v", err)
	}

	if _, err := st.Users().GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("GetByEmail miss: want ErrRecordNotFound, got %v", err)
	}
}

func TestDeviceGetOrCreateBySerial(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first, err := st.Devices().GetOrCreateBySerial(ctx, "SN-100")
	if err != nil {
		t.Fatalf("GetOrCreateBySerial: %v", err)
	}
	second, err := st.Devices().GetOrCreateBySerial(ctx, "SN-100")
	if err != nil {
		t.Fatalf("repeat GetOrCreateBySerial: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("same serial yielded two devices: %v vs %v", first.ID, second.ID)
	}

	if err := st.Devices().Create(ctx, &domain.Device{SerialNumber: "SN-100"}); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate serial Create: want ErrDuplicateKey, got %v", err)
	}
}

func TestOwnershipLinkIdempotent(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	owner := uuid.New()

	device, err := st.Devices().GetOrCreateBySerial(ctx, "SN-LINK")
	if err != nil {
		t.Fatalf("GetOrCreateBySerial: %v", err)
	}

	if ok, err := st.Ownerships().IsOwner(ctx, owner, device.ID); err != nil || ok {
		t.Fatalf("IsOwner before link = (%v, %v)", ok, err)
	}
	for i := 0; i < 3; i++ {
		if err := st.Ownerships().Link(ctx, owner, device.ID); err != nil {
			t.Fatalf("Link #%d: %v", i+1, err)
		}
	}
	if ok, err := st.Ownerships().IsOwner(ctx, owner, device.ID); err != nil || !ok {
		t.Fatalf("IsOwner after link = (%v, %v)", ok, err)
	}

	var count int64
	if err := st.DB.Model(&domain.Ownership{}).Count(&count).Error; err != nil {
		t.Fatalf("count ownerships: %v", err)
	}
	if count != 1 {
		t.Fatalf("ownership rows = %d, want 1", count)
	}

	if err := st.Ownerships().Unlink(ctx, owner, device.ID); err != nil {
		t.Fatalf("Unlink: %v", err)
	}
	if err := st.Ownerships().Unlink(ctx, owner, device.ID); err != nil {
		t.Fatalf("repeat Unlink: %v", err)
	}
	if ok, _ := st.Ownerships().IsOwner(ctx, owner, device.ID); ok {
		t.Fatal("still owner after Unlink")
	}
}

func TestWithTxRollsBack(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := st.WithTx(ctx, func(tx *Store) error {
		if err := tx.Users().Create(ctx, &domain.User{Email: "tx@example.com", PasswordDigest: "x"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx: want boom, got %v", err)
	}
	if _, err := st.Users().GetByEmail(ctx, "tx@example.com"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("row survived rollback: %v", err)
	}
}

func TestDeleteCascade(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	device, err := st.Devices().GetOrCreateBySerial(ctx, "SN-CASCADE")
	if err != nil {
		t.Fatalf("GetOrCreateBySerial: %v", err)
	}
	other, err := st.Devices().GetOrCreateBySerial(ctx, "SN-KEEP")
	if err != nil {
		t.Fatalf("GetOrCreateBySerial: %v", err)
	}
	owner := uuid.New()
	for _, id := range []uuid.UUID{device.ID, other.ID} {
		if err := st.Ownerships().Link(ctx, owner, id); err != nil {
			t.Fatalf("Link: %v", err)
		}
		ev := &domain.DeviceEvent{
			DeviceID:   id,
			MACAddress: "aa:bb:cc:dd:ee:ff",
			IPAddress:  "192.0.2.1",
			HappenedAt: time.Now().UTC(),
			CreatedAt:  time.Now().UTC(),
		}
		if err := st.Events().Append(ctx, ev); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	if err := st.Devices().DeleteCascade(ctx, device.ID); err != nil {
		t.Fatalf("DeleteCascade: %v", err)
	}

	if _, err := st.Devices().GetBySerial(ctx, "SN-CASCADE"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("device survived cascade: %v", err)
	}
	if ok, _ := st.Ownerships().IsOwner(ctx, owner, device.ID); ok {
		t.Fatal("ownership survived cascade")
	}

	// The sibling device is untouched.
	if _, err := st.Devices().GetBySerial(ctx, "SN-KEEP"); err != nil {
		t.Fatalf("sibling device gone: %v", err)
	}
	remaining, err := st.Ownerships().DevicesOf(ctx, owner)
	if err != nil {
		t.Fatalf("DevicesOf: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != other.ID {
		t.Fatalf("unexpected remaining devices: %+v", remaining)
	}
}
