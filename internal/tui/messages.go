package tui

import "github.com/1hanchen1/music/internal/domain"

// Message types for the TUI

// SearchResultsMsg signals that a search has settled. Seq identifies the
// search that produced it; stale completions are discarded.
type SearchResultsMsg struct {
	Seq    int
	Query  string
	Tracks []domain.Track
	Err    error
}

// DetailLoadedMsg signals that a track's detail record is ready
type DetailLoadedMsg struct {
	Seq    int
	Detail *domain.SongDetail
	Err    error
}

// PlaybackStartedMsg signals that the external player was launched
type PlaybackStartedMsg struct {
	Title string
}

// PlaybackFailedMsg signals that the external player could not start
type PlaybackFailedMsg struct {
	Err error
}

// CacheClearedMsg signals that the search result cache was wiped
type CacheClearedMsg struct{}

// noticeExpiredMsg dismisses the transient notice line
type noticeExpiredMsg struct {
	id int
}
