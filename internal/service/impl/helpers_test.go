package impl

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"telemetry/internal/observability/metrics"
	"telemetry/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var registerMetricsOnce sync.Once

// newTestStore opens a per-test in-memory sqlite database and runs the
// migrations. TranslateError stays on so the duplicate-key paths behave as
// they do against Postgres.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	registerMetricsOnce.Do(func() { metrics.MustRegister("test") })

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

	st := store.New(db)
	if err := st.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return st
}

func newAuthService(t *testing.T, st *store.Store) *AuthServiceImpl {
	t.Helper()
	return NewAuthServiceImpl(st, NewPasswordServiceArgon2id(1), NewTokenServiceHS256(testTokenConfig()))
}
