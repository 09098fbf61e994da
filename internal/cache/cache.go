// Package cache implements the bounded search result cache: a single JSON
// document per namespace in the backing store, with TTL expiry as a hard
// cutoff and LRU eviction as the capacity tie-break.
package cache

import (
	"encoding/json"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/1hanchen1/music/internal/domain"
)

const (
	// keyPrefix namespaces cache keys against unrelated data in the store
	keyPrefix = "music_search_"

	// document is the store namespace holding the serialized cache
	document = "search_results"

	defaultMaxEntries = 15
	defaultTTL        = 2 * time.Hour
)

// entry is the persisted per-key record. The wire shape
// {data, timestamp, lru} is shared with earlier versions of the store.
type entry struct {
	Data      []domain.Track `json:"data"`
	Timestamp int64          `json:"timestamp"` // creation time in ms, never touched after Set
	LRU       int64          `json:"lru"`       // last access time in ms, touched on every Get hit
}

// Options configures a Manager. Zero values select the defaults.
type Options struct {
	MaxEntries int
	TTL        time.Duration
	Now        func() time.Time // injected clock for deterministic tests
	Logger     *slog.Logger
}

// Manager is the only reader and writer of its cache document. All
// operations are one read-modify-write of the whole document under the
// mutex, so a Set never acts on a snapshot staler than a concurrent
// Delete or Clear.
type Manager struct {
	store      domain.DocumentStore
	maxEntries int
	ttl        time.Duration
	now        func() time.Time
	logger     *slog.Logger

	mu sync.Mutex
}

// NewManager creates a cache manager over the given document store
func NewManager(store domain.DocumentStore, opts Options) *Manager {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = defaultMaxEntries
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Manager{
		store:      store,
		maxEntries: opts.MaxEntries,
		ttl:        opts.TTL,
		now:        opts.Now,
		logger:     opts.Logger,
	}
}

// Key derives the deterministic cache key for a query: case-insensitive,
// percent-encoded, namespaced by the cache prefix.
func Key(query string) string {
	return keyPrefix + url.QueryEscape(strings.ToLower(strings.TrimSpace(query)))
}

// Get returns the cached tracks for query, touching the entry's LRU stamp
// on a hit. Missing, expired, and malformed entries all report a plain miss.
func (m *Manager) Get(query string) ([]domain.Track, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.load()
	key := Key(query)

	e, ok := entries[key]
	if !ok {
		return nil, false
	}

	now := m.now().UnixMilli()
	if now-e.Timestamp > m.ttl.Milliseconds() {
		// Expired entries are ignored here and swept on the next Set
		return nil, false
	}
	if e.Data == nil {
		// Malformed payload degrades to a miss, never an error
		return nil, false
	}

	e.LRU = now
	entries[key] = e
	m.save(entries)

	return e.Data, true
}

// Set stores tracks under the query's key, sweeping expired entries first
// and evicting least-recently-used entries down to the capacity bound.
func (m *Manager) Set(query string, tracks []domain.Track) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.load()
	now := m.now().UnixMilli()

	// Phase one: TTL is a hard cutoff
	for k, e := range entries {
		if now-e.Timestamp > m.ttl.Milliseconds() {
			delete(entries, k)
		}
	}

	entries[Key(query)] = entry{Data: tracks, Timestamp: now, LRU: now}

	// Phase two: LRU only breaks ties on capacity. The fresh entry carries
	// the newest stamp so it never evicts itself.
	if len(entries) > m.maxEntries {
		keys := make([]string, 0, len(entries))
		for k := range entries {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return entries[keys[i]].LRU < entries[keys[j]].LRU
		})
		for _, k := range keys[:len(entries)-m.maxEntries] {
			delete(entries, k)
		}
	}

	m.save(entries)
}

// Delete removes one entry by its query's derived key; absent is a no-op
func (m *Manager) Delete(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := m.load()
	key := Key(query)
	if _, ok := entries[key]; !ok {
		return
	}
	delete(entries, key)
	m.save(entries)
}

// Clear removes the entire cache document
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Remove(document); err != nil {
		m.logger.Debug("cache clear failed", "error", err)
	}
}

// load reads and decodes the cache document. A corrupted document or entry
// degrades to an empty store / missing entry rather than an error.
func (m *Manager) load() map[string]entry {
	entries := make(map[string]entry)

	data, ok := m.store.Read(document)
	if !ok {
		return entries
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		m.logger.Debug("discarding corrupted cache document", "error", err)
		return entries
	}

	for k, v := range raw {
		var e entry
		if err := json.Unmarshal(v, &e); err != nil {
			m.logger.Debug("discarding corrupted cache entry", "key", k, "error", err)
			continue
		}
		entries[k] = e
	}
	return entries
}

// save persists the whole cache as one document replace
func (m *Manager) save(entries map[string]entry) {
	data, err := json.Marshal(entries)
	if err != nil {
		m.logger.Debug("cache marshal failed", "error", err)
		return
	}
	if err := m.store.Write(document, data); err != nil {
		m.logger.Debug("cache write failed", "error", err)
	}
}
