// Package postgres contains the gorm-backed persistence adapters shared by
// both services.
package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KennyASG/ticketapp/internal/core/domain"
)

// Connect opens the database, runs migrations, and seeds the concert status
// enumeration. Any failure here is fatal to process startup: callers must
// not begin serving without a reachable store.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := db.AutoMigrate(&userRecord{}, &statusRecord{}, &concertRecord{}); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}

	if err := seedStatuses(db); err != nil {
		return nil, fmt.Errorf("postgres seed: %w", err)
	}

	return db, nil
}

// seedStatuses inserts the status enumeration on first boot only.
func seedStatuses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&statusRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	statuses := []statusRecord{
		{Name: domain.StatusScheduled},
		{Name: domain.StatusSoldOut},
		{Name: domain.StatusCancelled},
		{Name: domain.StatusCompleted},
	}
	return db.Create(&statuses).Error
}
