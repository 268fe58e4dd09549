// Package database owns the persistent store: one SQLite file holding the
// settings, products, sales and sale_lines collections, plus the analytics
// and snapshot operations derived from them.
package database

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"

	"resto-pos/internal/apperr"
	"resto-pos/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// settingsID pins the settings singleton to one well-known row.
const settingsID = 1

// Store is the single handle to the persisted state. It is created once at
// startup and injected into every component; reads share the lock, the
// snapshot paths take it exclusively because they swap the file underneath.
type Store struct {
	mu   sync.RWMutex
	db   *gorm.DB
	path string
}

// Open opens (creating if needed) the database at path, migrates the schema
// idempotently and seeds the default settings row on first run.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, apperr.Storage("create data directory", err)
		}
	}

	db, err := open(path)
	if err != nil {
		return nil, apperr.Storage("open database", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func open(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

func (s *Store) migrate() error {
	err := s.db.AutoMigrate(
		&models.Settings{},
		&models.Product{},
		&models.Sale{},
		&models.SaleLine{},
	)
	if err != nil {
		return apperr.Storage("migrate schema", err)
	}

	defaults := models.Settings{
		RestaurantName: "Restaurant Management System",
		Currency:       "PKR",
		ReceiptFooter:  "Thank you for your business!",
	}
	var settings models.Settings
	err = s.db.Where("id = ?", settingsID).Attrs(defaults).FirstOrCreate(&settings).Error
	if err != nil {
		return apperr.Storage("seed default settings", err)
	}
	return nil
}

// Close releases the underlying connection. The store is unusable afterwards.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *Store) closeLocked() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return apperr.Storage("close database", err)
	}
	if err := sqlDB.Close(); err != nil {
		return apperr.Storage("close database", err)
	}
	return nil
}

// Path returns the on-disk location of the store.
func (s *Store) Path() string { return s.path }

// wrap normalizes gorm errors into the taxonomy; record-not-found becomes
// NotFound with the given message, everything else a StorageError carrying
// the operation name.
func wrap(op, notFoundMsg string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s", notFoundMsg)
	}
	return apperr.Storage(op, err)
}

// round2 rounds to 2-decimal monetary precision, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
