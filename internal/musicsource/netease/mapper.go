package netease

import (
	"strconv"
	"strings"

	"github.com/1hanchen1/music/internal/domain"
)

// qualityLabels maps netease bitrate codes to display tiers
var qualityLabels = map[int]string{
	128000: domain.QualityStandard,
	192000: domain.QualityHigher,
	320000: domain.QualityHQ,
	999000: domain.QualityLossless,
}

// mapQuality resolves a bitrate code; unknown codes never fail
func mapQuality(code int) string {
	if label, ok := qualityLabels[code]; ok {
		return label
	}
	return domain.QualityUnknown
}

// mapTracks converts raw search items to domain tracks.
// Items without a title or artist are dropped, not defaulted.
func mapTracks(songs []songDTO) []domain.Track {
	tracks := make([]domain.Track, 0, len(songs))
	for _, s := range songs {
		if s.Name == "" || s.Artist == "" {
			continue
		}
		tracks = append(tracks, domain.Track{
			Source:  domain.SourceNetease,
			ID:      strconv.FormatInt(s.ID, 10),
			Title:   s.Name,
			Artist:  s.Artist,
			Quality: mapQuality(s.Quality),
		})
	}
	return tracks
}

// mapDetail converts a raw detail record, resolving relative cover URLs
// against the API base. A record with no song name under either alias is
// unusable.
func mapDetail(d detailDTO, baseURL string) (*domain.SongDetail, error) {
	title := d.Name
	if title == "" {
		title = d.SongName
	}
	if title == "" {
		return nil, &domain.ValidationError{Source: domain.SourceNetease, Err: domain.ErrMissingTitle}
	}

	return &domain.SongDetail{
		Source:    domain.SourceNetease,
		Title:     title,
		Artist:    d.Artist,
		CoverURL:  resolveURL(d.Pic, baseURL),
		StreamURL: d.URL,
		Lyric:     d.Lyric,
		Quality:   mapQuality(d.Quality),
	}, nil
}

// resolveURL makes a possibly-relative URL absolute against the API base
func resolveURL(u, baseURL string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(u, "/")
}
