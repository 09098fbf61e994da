package domain

import "context"

// MusicSource is the per-API adapter interface: search one source and fetch
// detail for one of its results. Implementations fail soft on malformed
// search items (dropped, not errored) and hard on unusable detail records.
type MusicSource interface {
	// ID returns the source identifier used for precedence and detail routing
	ID() SourceID

	// Search queries the source and returns normalized tracks.
	// Items with an empty title or artist are dropped.
	Search(ctx context.Context, query string) ([]Track, error)

	// Detail fetches and normalizes the detail record for one track
	Detail(ctx context.Context, id, query string) (*SongDetail, error)
}

// DocumentStore is the persistence capability the cache serializes into:
// one opaque document per logical namespace. The cache is the only writer
// of its namespace.
type DocumentStore interface {
	// Read returns the stored document, or false if absent
	Read(name string) ([]byte, bool)

	// Write replaces the stored document in one operation
	Write(name string, data []byte) error

	// Remove deletes the document; absent is not an error
	Remove(name string) error
}
