package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketDocuments = []byte("documents")

// DocumentStore implements domain.DocumentStore using BoltDB. Each document
// is one value in a single bucket; callers own their document's format.
type DocumentStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// NewDocumentStore opens the store under dir. An empty dir selects
// memory-only mode (no persistence), used by tests and the "-" cache dir.
func NewDocumentStore(dir string) (*DocumentStore, error) {
	if dir == "" {
		return &DocumentStore{cache: make(map[string][]byte)}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "music.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDocuments)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DocumentStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *DocumentStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Read returns the stored document, or false if absent
func (s *DocumentStore) Read(name string) ([]byte, bool) {
	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	// Read from BoltDB
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(name)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[name] = data
	s.mu.Unlock()

	return data, true
}

// Write replaces the stored document in one operation
func (s *DocumentStore) Write(name string, data []byte) error {
	// Update memory cache
	s.mu.Lock()
	s.cache[name] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		return b.Put([]byte(name), data)
	})
}

// Remove deletes the document; absent is not an error
func (s *DocumentStore) Remove(name string) error {
	s.mu.Lock()
	delete(s.cache, name)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b != nil {
			return b.Delete([]byte(name))
		}
		return nil
	})
}
