package domain

import "strings"

// SourceID identifies a music metadata source
type SourceID string

const (
	SourceNetease SourceID = "netease"
	SourceQQMusic SourceID = "qqmusic"
	SourceKuwo    SourceID = "kuwo"
)

// DefaultSourceOrder is the merge precedence: when two sources return the
// same song, the earlier source's item wins.
var DefaultSourceOrder = []SourceID{SourceNetease, SourceQQMusic, SourceKuwo}

// KnownSource reports whether id names one of the supported sources
func KnownSource(id SourceID) bool {
	switch id {
	case SourceNetease, SourceQQMusic, SourceKuwo:
		return true
	}
	return false
}

// Track is one normalized search result. ID is only meaningful within its
// source; Title and Artist are guaranteed non-empty by the source mappers.
type Track struct {
	Source  SourceID `json:"source"`
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Artist  string   `json:"artist"`
	Quality string   `json:"quality"`
}

// DedupKey is the identity used when merging results across sources:
// lowercase title and artist, exact match only.
func (t Track) DedupKey() string {
	return strings.ToLower(t.Title) + "|" + strings.ToLower(t.Artist)
}

// SongDetail is the normalized detail record for a selected track.
// It is always fetched fresh, never cached.
type SongDetail struct {
	Source    SourceID `json:"source"`
	Title     string   `json:"title"`
	Artist    string   `json:"artist"`
	CoverURL  string   `json:"coverUrl"`
	StreamURL string   `json:"streamUrl"`
	Lyric     string   `json:"lyric"`
	Quality   string   `json:"quality"`
}

// Quality tier labels shared by all source quality tables
const (
	QualityStandard = "Standard"
	QualityHigher   = "Higher"
	QualityHQ       = "HQ"
	QualityLossless = "Lossless"
	QualityUnknown  = "Unknown"
)
