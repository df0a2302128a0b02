// Package db opens the gorm connection the rest of the process shares.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Options struct {
	// LogSQL raises the gorm log level so every statement is printed.
	LogSQL bool
}

// Open connects to Postgres. TranslateError is on so unique-constraint
// violations surface as gorm.ErrDuplicatedKey instead of driver errors.
func Open(dsn string, opts Options) (*gorm.DB, error) {
	level := gormlogger.Warn
	if opts.LogSQL {
		level = gormlogger.Info
	}

	gl := gormlogger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gl,
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gdb, nil
}
