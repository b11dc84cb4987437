package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/datapad/internal/domain"
)

// Bucket names
var (
	bucketPrefs  = []byte("prefs")
	bucketRecent = []byte("recent")
)

const (
	keyListQuery = "list_query"
	keyRecent    = "names"
)

// PreferenceStore implements domain.PreferenceStore using BoltDB.
// With no path it runs memory-only and forgets everything on exit.
type PreferenceStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory copy of everything written or read this session
	cache map[string][]byte
}

// NewPreferenceStore opens (or creates) the store at path
func NewPreferenceStore(path string) (*PreferenceStore, error) {
	if path == "" {
		return &PreferenceStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketPrefs, bucketRecent} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PreferenceStore{db: db, cache: make(map[string][]byte)}, nil
}

// Close releases the database file lock
func (s *PreferenceStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *PreferenceStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *PreferenceStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *PreferenceStore) delete(bucket []byte, key string) error {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// === List query ===

func (s *PreferenceStore) GetListQuery() (domain.ListQuery, bool) {
	var q domain.ListQuery
	ok := s.get(bucketPrefs, keyListQuery, &q)
	return q, ok
}

func (s *PreferenceStore) SaveListQuery(q domain.ListQuery) error {
	return s.set(bucketPrefs, keyListQuery, q)
}

// === Recent lookups (most recent first) ===

func (s *PreferenceStore) GetRecent() ([]string, bool) {
	var names []string
	ok := s.get(bucketRecent, keyRecent, &names)
	return names, ok
}

func (s *PreferenceStore) SaveRecent(names []string) error {
	return s.set(bucketRecent, keyRecent, names)
}

// ClearRecent forgets all recent lookups
func (s *PreferenceStore) ClearRecent() error {
	return s.delete(bucketRecent, keyRecent)
}
