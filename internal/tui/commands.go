package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/1hanchen1/music/internal/domain"
)

// noticeDuration is how long a transient notice stays visible
const noticeDuration = 3 * time.Second

// searchCmd runs one fan-out search. The sequence number travels with the
// result so the model can discard completions overtaken by a newer search.
func (m *Model) searchCmd(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.search.Search(context.Background(), query)
		return SearchResultsMsg{Seq: seq, Query: query, Tracks: tracks, Err: err}
	}
}

// detailCmd fetches one track's detail record
func (m *Model) detailCmd(seq int, track domain.Track, query string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.search.Detail(context.Background(), track.Source, track.ID, query)
		return DetailLoadedMsg{Seq: seq, Detail: detail, Err: err}
	}
}

// playCmd hands the stream URL to the external player
func (m *Model) playCmd(detail *domain.SongDetail) tea.Cmd {
	return func() tea.Msg {
		if err := m.launcher.Launch(detail.StreamURL); err != nil {
			return PlaybackFailedMsg{Err: err}
		}
		return PlaybackStartedMsg{Title: detail.Title}
	}
}

// clearCacheCmd wipes the search result cache
func (m *Model) clearCacheCmd() tea.Cmd {
	return func() tea.Msg {
		m.cache.Clear()
		return CacheClearedMsg{}
	}
}

// expireNoticeCmd schedules dismissal of the notice with the given id
func expireNoticeCmd(id int) tea.Cmd {
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}
