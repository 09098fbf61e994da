package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/1hanchen1/music/internal/cache"
	"github.com/1hanchen1/music/internal/config"
	"github.com/1hanchen1/music/internal/domain"
	"github.com/1hanchen1/music/internal/player"
	"github.com/1hanchen1/music/internal/service"
	"github.com/1hanchen1/music/internal/tui/styles"
)

// view identifies the active screen
type view int

const (
	viewSearch view = iota
	viewResults
	viewDetail
)

// noticeLevel styles the transient notice line
type noticeLevel int

const (
	noticeSuccess noticeLevel = iota
	noticeWarning
	noticeError
)

// notice is the toast equivalent: one short line with a severity and an id
// so a newer notice's expiry can't dismiss it
type notice struct {
	text  string
	level noticeLevel
	id    int
}

// Model is the bubbletea model for the whole application
type Model struct {
	search   *service.SearchService
	cache    *cache.Manager
	launcher *player.Launcher
	logger   *slog.Logger

	keys        KeyMap
	themeIdx    int
	styles      styles.Styles
	width       int
	height      int
	view        view
	input       textinput.Model
	filterInput textinput.Model
	filtering   bool
	spin        spinner.Model
	lyrics      viewport.Model

	query   string
	tracks  []domain.Track // full merged result set
	visible []domain.Track // after local filter
	cursor  int
	detail  *domain.SongDetail

	// Sequence numbers key in-flight work so stale completions are dropped
	searchSeq int
	detailSeq int
	loading   bool

	notice   *notice
	noticeID int
}

// NewModel creates the TUI model
func NewModel(search *service.SearchService, cacheMgr *cache.Manager, launcher *player.Launcher, themeName string, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	themeIdx := styles.IndexOf(themeName)
	st := styles.New(styles.Themes[themeIdx])

	input := textinput.New()
	input.Placeholder = "song or artist"
	input.Prompt = "search> "
	input.CharLimit = 120
	input.Focus()

	filterInput := textinput.New()
	filterInput.Prompt = "filter> "
	filterInput.CharLimit = 60

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		search:      search,
		cache:       cacheMgr,
		launcher:    launcher,
		logger:      logger,
		keys:        DefaultKeyMap(),
		themeIdx:    themeIdx,
		styles:      st,
		view:        viewSearch,
		input:       input,
		filterInput: filterInput,
		spin:        spin,
		lyrics:      viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.lyrics.Width = msg.Width - 4
		m.lyrics.Height = max(msg.Height-10, 3)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case SearchResultsMsg:
		if msg.Seq != m.searchSeq {
			// A newer search is in flight; this completion is stale
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m.showNotice("Search failed: no source is reachable", noticeError)
		}
		if len(msg.Tracks) == 0 {
			return m.showNotice(fmt.Sprintf("No results for %q", msg.Query), noticeWarning)
		}
		m.query = msg.Query
		m.tracks = msg.Tracks
		m.visible = msg.Tracks
		m.cursor = 0
		m.filtering = false
		m.filterInput.SetValue("")
		m.view = viewResults
		return m.showNotice(fmt.Sprintf("%d results", len(msg.Tracks)), noticeSuccess)

	case DetailLoadedMsg:
		if msg.Seq != m.detailSeq {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			return m.showNotice("Could not load song details", noticeError)
		}
		m.detail = msg.Detail
		m.lyrics.SetContent(renderLyric(msg.Detail.Lyric))
		m.lyrics.GotoTop()
		m.view = viewDetail
		return m, nil

	case PlaybackStartedMsg:
		return m.showNotice("Playing: "+msg.Title, noticeSuccess)

	case PlaybackFailedMsg:
		m.logger.Error("playback failed", "error", msg.Err)
		return m.showNotice("Could not start player", noticeError)

	case CacheClearedMsg:
		return m.showNotice("Search cache cleared", noticeSuccess)

	case noticeExpiredMsg:
		if m.notice != nil && m.notice.id == msg.id {
			m.notice = nil
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches key input by the active screen
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && m.view != viewSearch && !m.filtering {
		return m, tea.Quit
	}
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch {
	case m.view == viewSearch:
		return m.handleSearchKey(msg)
	case m.filtering:
		return m.handleFilterKey(msg)
	case m.view == viewResults:
		return m.handleResultsKey(msg)
	default:
		return m.handleDetailKey(msg)
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m.showNotice("Type something to search", noticeWarning)
		}
		m.searchSeq++
		m.loading = true
		return m, tea.Batch(m.spin.Tick, m.searchCmd(m.searchSeq, query))
	case tea.KeyEsc:
		if len(m.tracks) > 0 {
			m.view = viewResults
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.SetValue("")
		m.visible = m.tracks
		m.cursor = 0
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.visible = filterTracks(m.filterInput.Value(), m.tracks)
	m.cursor = 0
	return m, cmd
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor < len(m.visible) {
			m.detailSeq++
			m.loading = true
			track := m.visible[m.cursor]
			return m, tea.Batch(m.spin.Tick, m.detailCmd(m.detailSeq, track, m.query))
		}
	case key.Matches(msg, m.keys.Search):
		m.view = viewSearch
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.ClearCache):
		return m, m.clearCacheCmd()
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewResults
		return m, nil
	case key.Matches(msg, m.keys.Play):
		if m.detail != nil {
			return m, m.playCmd(m.detail)
		}
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	}

	var cmd tea.Cmd
	m.lyrics, cmd = m.lyrics.Update(msg)
	return m, cmd
}

// cycleTheme advances to the next theme and persists the choice
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	m.themeIdx = (m.themeIdx + 1) % len(styles.Themes)
	theme := styles.Themes[m.themeIdx]
	m.styles = styles.New(theme)
	if err := config.SaveTheme(theme.Name); err != nil {
		m.logger.Warn("failed to persist theme", "error", err)
	}
	return m.showNotice("Theme: "+theme.Name, noticeSuccess)
}

// showNotice replaces the notice line and schedules its expiry
func (m Model) showNotice(text string, level noticeLevel) (tea.Model, tea.Cmd) {
	m.noticeID++
	m.notice = &notice{text: text, level: level, id: m.noticeID}
	return m, expireNoticeCmd(m.noticeID)
}

// renderLyric strips empty lines from raw LRC-style lyric text
func renderLyric(raw string) string {
	if raw == "" {
		return "(no lyrics)"
	}
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
