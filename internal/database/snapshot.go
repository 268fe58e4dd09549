package database

import (
	"bytes"
	"os"

	"resto-pos/internal/apperr"
	"resto-pos/internal/models"

	"gorm.io/gorm"
)

const backupSuffix = ".backup"

// sqliteMagic is the 16-byte header every SQLite database file starts with.
var sqliteMagic = []byte("SQLite format 3\x00")

// ExportSnapshot returns the raw bytes of the on-disk database file. The
// exclusive lock guarantees no sale commit is in flight while the file is
// read, so the blob round-trips byte-identically through ImportSnapshot.
func (s *Store) ExportSnapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, apperr.Storage("export snapshot", err)
	}
	return data, nil
}

// ImportSnapshot replaces the live store with the supplied bytes. The
// sequence is backup, swap, verify: the current file is copied aside first,
// and any failure while swapping or reopening restores that backup before
// the error is reported. A failed import must never leave the store
// unopenable.
func (s *Store) ImportSnapshot(data []byte) error {
	if !bytes.HasPrefix(data, sqliteMagic) {
		return apperr.Validation("snapshot is not a valid database file")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	backup := s.path + backupSuffix
	if err := copyFile(s.path, backup); err != nil {
		return apperr.Storage("backup before import", err)
	}

	if err := s.closeLocked(); err != nil {
		// The live handle is still usable; nothing was swapped yet.
		_ = os.Remove(backup)
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		if rerr := s.restoreLocked(backup); rerr != nil {
			return apperr.Storage("restore after failed snapshot write; backup kept at "+backup, rerr)
		}
		return apperr.Storage("write snapshot", err)
	}

	if err := s.reopenAndVerifyLocked(); err != nil {
		if rerr := s.restoreLocked(backup); rerr != nil {
			return apperr.Storage("restore after failed snapshot import; backup kept at "+backup, rerr)
		}
		return err
	}

	_ = os.Remove(backup)
	return nil
}

// reopenAndVerifyLocked opens the swapped-in file and proves the four
// collections are queryable before the import is declared successful.
func (s *Store) reopenAndVerifyLocked() error {
	db, err := open(s.path)
	if err != nil {
		return apperr.Storage("open imported snapshot", err)
	}

	var n int64
	for _, probe := range []struct {
		name  string
		model any
	}{
		{"settings", &models.Settings{}},
		{"products", &models.Product{}},
		{"sales", &models.Sale{}},
		{"sale_lines", &models.SaleLine{}},
	} {
		if err := db.Model(probe.model).Count(&n).Error; err != nil {
			closeDB(db)
			return apperr.Storage("verify imported snapshot ("+probe.name+")", err)
		}
	}

	s.db = db
	return nil
}

// restoreLocked puts the pre-import bytes back and reopens the store. The
// backup is discarded only once it has been copied back; if the copy fails it
// stays on disk as the last good copy of the pre-import state.
func (s *Store) restoreLocked(backup string) error {
	if err := copyFile(backup, s.path); err != nil {
		return err
	}
	_ = os.Remove(backup)
	if db, err := open(s.path); err == nil {
		s.db = db
	}
	return nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
