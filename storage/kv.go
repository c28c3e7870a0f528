// Package storage is the local key-value cache behind saved locations,
// recent searches and full address records. Everything here is best-effort:
// a missing or unreadable entry is an empty default, never an error the
// caller has to handle.
package storage

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Entry is one string-keyed row in the cache.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (Entry) TableName() string {
	return "kv_entries"
}

// Store is a sqlite-backed string key-value store.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Get returns the raw value for key, and false when the key is absent or
// the read fails.
func (s *Store) Get(key string) (string, bool) {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: read %q failed: %v", key, err)
		}
		return "", false
	}
	return entry.Value, true
}

// Set writes the raw value for key. Failures are logged and swallowed.
func (s *Store) Set(key, value string) {
	entry := Entry{Key: key, Value: value, UpdatedAt: time.Now()}
	if err := s.db.Save(&entry).Error; err != nil {
		log.Printf("storage: write %q failed: %v", key, err)
	}
}

// Delete removes a key. No-op when absent.
func (s *Store) Delete(key string) {
	if err := s.db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		log.Printf("storage: delete %q failed: %v", key, err)
	}
}

// getJSON decodes the value for key into v. A corrupt entry is logged and
// treated the same as a missing one.
func (s *Store) getJSON(key string, v any) bool {
	raw, ok := s.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("storage: corrupt entry %q, falling back to empty: %v", key, err)
		return false
	}
	return true
}

func (s *Store) setJSON(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage: encode %q failed: %v", key, err)
		return
	}
	s.Set(key, string(raw))
}
