package cache

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/1hanchen1/music/internal/domain"
	"github.com/1hanchen1/music/internal/log"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory domain.DocumentStore
type fakeStore struct {
	docs map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[string][]byte)}
}

func (s *fakeStore) Read(name string) ([]byte, bool) {
	data, ok := s.docs[name]
	return data, ok
}

func (s *fakeStore) Write(name string, data []byte) error {
	s.docs[name] = data
	return nil
}

func (s *fakeStore) Remove(name string) error {
	delete(s.docs, name)
	return nil
}

// fakeClock advances only when told to
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestManager(store *fakeStore, clock *fakeClock, maxEntries int, ttl time.Duration) *Manager {
	return NewManager(store, Options{
		MaxEntries: maxEntries,
		TTL:        ttl,
		Now:        clock.Now,
		Logger:     log.NullLogger(),
	})
}

func tracks(titles ...string) []domain.Track {
	out := make([]domain.Track, 0, len(titles))
	for i, title := range titles {
		out = append(out, domain.Track{
			Source: domain.SourceNetease,
			ID:     fmt.Sprintf("%d", i),
			Title:  title,
			Artist: "Artist",
		})
	}
	return out
}

func TestGetAfterSetRoundTrip(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(newFakeStore(), clock, 15, 2*time.Hour)

	want := tracks("First Song", "Second Song")
	m.Set("query", want)

	got, ok := m.Get("query")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestKeyIsCaseInsensitive(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(newFakeStore(), clock, 15, 2*time.Hour)

	want := tracks("Song")
	m.Set("song title", want)

	got, ok := m.Get("  SONG Title ")
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestExpiredEntryIsNeverReturned(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(newFakeStore(), clock, 15, 2*time.Hour)

	m.Set("query", tracks("Song"))

	clock.Advance(2*time.Hour + time.Minute)
	_, ok := m.Get("query")
	require.False(t, ok)
}

func TestSetSweepsExpiredEntries(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(store, clock, 15, 2*time.Hour)

	m.Set("old", tracks("Old"))
	clock.Advance(3 * time.Hour)
	m.Set("fresh", tracks("Fresh"))

	doc, ok := store.Read("search_results")
	require.True(t, ok)
	var entries map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(doc, &entries))
	require.Len(t, entries, 1)
	require.Contains(t, entries, Key("fresh"))
}

func TestCapacityBoundHeldAfterEverySet(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(store, clock, 5, 2*time.Hour)

	for i := 0; i < 12; i++ {
		m.Set(fmt.Sprintf("query-%d", i), tracks("Song"))
		clock.Advance(time.Second)

		doc, ok := store.Read("search_results")
		require.True(t, ok)
		var entries map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(doc, &entries))
		require.LessOrEqual(t, len(entries), 5)
	}
}

func TestLRUEvictionSparesRecentlyRead(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(newFakeStore(), clock, 3, 2*time.Hour)

	m.Set("a", tracks("A"))
	clock.Advance(time.Second)
	m.Set("b", tracks("B"))
	clock.Advance(time.Second)
	m.Set("c", tracks("C"))
	clock.Advance(time.Second)

	// Touch "a" so "b" becomes the least recently used entry
	_, ok := m.Get("a")
	require.True(t, ok)
	clock.Advance(time.Second)

	m.Set("d", tracks("D"))

	_, ok = m.Get("a")
	require.True(t, ok, "refreshed entry should survive eviction")
	_, ok = m.Get("b")
	require.False(t, ok, "least recently used entry should be evicted")
	_, ok = m.Get("c")
	require.True(t, ok)
	_, ok = m.Get("d")
	require.True(t, ok)
}

func TestCorruptedDocumentDegradesToEmpty(t *testing.T) {
	store := newFakeStore()
	store.docs["search_results"] = []byte("{not json")

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(store, clock, 15, 2*time.Hour)

	_, ok := m.Get("query")
	require.False(t, ok)

	// The manager keeps working after the corrupted read
	m.Set("query", tracks("Song"))
	got, ok := m.Get("query")
	require.True(t, ok)
	require.Len(t, got, 1)
}

func TestMalformedEntryIsAMissNotAnError(t *testing.T) {
	store := newFakeStore()
	doc := fmt.Sprintf(`{%q: {"data": "not a list", "timestamp": 1, "lru": 1}}`, Key("query"))
	store.docs["search_results"] = []byte(doc)

	clock := &fakeClock{now: time.Unix(0, 0)}
	m := newTestManager(store, clock, 15, 2*time.Hour)

	_, ok := m.Get("query")
	require.False(t, ok)
}

func TestDeleteAndClear(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(store, clock, 15, 2*time.Hour)

	m.Set("a", tracks("A"))
	m.Set("b", tracks("B"))

	m.Delete("a")
	_, ok := m.Get("a")
	require.False(t, ok)
	_, ok = m.Get("b")
	require.True(t, ok)

	// Deleting an absent key is a no-op
	m.Delete("missing")

	m.Clear()
	_, ok = store.Read("search_results")
	require.False(t, ok)
}

func TestWireShapeCompatibility(t *testing.T) {
	store := newFakeStore()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := newTestManager(store, clock, 15, 2*time.Hour)

	m.Set("query", tracks("Song"))

	doc, _ := store.Read("search_results")
	var entries map[string]struct {
		Data      []domain.Track `json:"data"`
		Timestamp int64          `json:"timestamp"`
		LRU       int64          `json:"lru"`
	}
	require.NoError(t, json.Unmarshal(doc, &entries))
	e, ok := entries[Key("query")]
	require.True(t, ok)
	require.Equal(t, clock.Now().UnixMilli(), e.Timestamp)
	require.Equal(t, clock.Now().UnixMilli(), e.LRU)
	require.Len(t, e.Data, 1)
}
