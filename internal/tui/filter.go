package tui

import (
	"sort"

	"github.com/1hanchen1/music/internal/domain"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// filterTracks narrows tracks to fuzzy matches of pattern against
// "title artist", best matches first. An empty pattern returns the input
// unchanged. Filtering is display-only; the merged result set is untouched.
func filterTracks(pattern string, tracks []domain.Track) []domain.Track {
	if pattern == "" {
		return tracks
	}

	targets := make([]string, len(tracks))
	for i, t := range tracks {
		targets[i] = t.Title + " " + t.Artist
	}

	matches := fuzzy.RankFindFold(pattern, targets)
	sort.Sort(matches)

	out := make([]domain.Track, 0, len(matches))
	for _, m := range matches {
		out = append(out, tracks[m.OriginalIndex])
	}
	return out
}
