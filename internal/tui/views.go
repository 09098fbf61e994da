package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("♪ music"))
	b.WriteString("\n\n")

	switch m.view {
	case viewSearch:
		b.WriteString(m.renderSearch())
	case viewResults:
		b.WriteString(m.renderResults())
	case viewDetail:
		b.WriteString(m.renderDetail())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.Meta.Render(" searching…"))
	}
	return b.String()
}

// maxVisibleRows bounds the result list height independent of terminal size
const maxVisibleRows = 20

func (m Model) renderResults() string {
	var b strings.Builder

	if m.filtering {
		b.WriteString(m.filterInput.View())
		b.WriteString("\n\n")
	} else {
		header := fmt.Sprintf("%q — %d results", m.query, len(m.visible))
		b.WriteString(m.styles.Meta.Render(header))
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(m.styles.Meta.Render("  (nothing matches)"))
		b.WriteString("\n")
		return b.String()
	}

	rows := maxVisibleRows
	if m.height > 0 && m.height-8 < rows {
		rows = m.height - 8
	}
	if rows < 1 {
		rows = 1
	}

	// Keep the cursor inside the visible window
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for i := start; i < end; i++ {
		t := m.visible[i]
		line := fmt.Sprintf("%s — %s", t.Title, t.Artist)
		meta := fmt.Sprintf("  [%s · %s]", t.Quality, t.Source)
		if i == m.cursor {
			b.WriteString(m.styles.SelectedItem.Render("▸ " + line))
		} else {
			b.WriteString(m.styles.Item.Render("  " + line))
		}
		b.WriteString(m.styles.Meta.Render(meta))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.Meta.Render(" loading…"))
	}
	return b.String()
}

func (m Model) renderDetail() string {
	if m.detail == nil {
		return m.styles.Meta.Render("(no selection)")
	}

	var b strings.Builder
	d := m.detail
	b.WriteString(m.styles.Title.Render(d.Title))
	b.WriteString(m.styles.Meta.Render(fmt.Sprintf("  %s · %s · %s", d.Artist, d.Quality, d.Source)))
	b.WriteString("\n")
	if d.CoverURL != "" {
		b.WriteString(m.styles.Meta.Render("cover: " + d.CoverURL))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Lyric.Render(m.lyrics.View()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderFooter() string {
	if m.notice != nil {
		switch m.notice.level {
		case noticeError:
			return m.styles.Error.Render(m.notice.text)
		case noticeWarning:
			return m.styles.Warning.Render(m.notice.text)
		default:
			return m.styles.Success.Render(m.notice.text)
		}
	}

	var help string
	switch m.view {
	case viewSearch:
		help = "enter search · esc back · ctrl+c quit"
	case viewResults:
		help = "enter details · / filter · s new search · t theme · C clear cache · q quit"
	case viewDetail:
		help = "p play · esc back · t theme · q quit"
	}
	return m.styles.Help.Render(help)
}
