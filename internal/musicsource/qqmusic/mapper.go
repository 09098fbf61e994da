package qqmusic

import (
	"strings"

	"github.com/1hanchen1/music/internal/domain"
)

// qualityLabels maps qqmusic level codes to display tiers
var qualityLabels = map[int]string{
	1: domain.QualityStandard,
	2: domain.QualityHigher,
	3: domain.QualityHQ,
	4: domain.QualityLossless,
}

func mapQuality(level int) string {
	if label, ok := qualityLabels[level]; ok {
		return label
	}
	return domain.QualityUnknown
}

// mapTracks converts raw search items to domain tracks, dropping items
// without a title or artist
func mapTracks(songs []songDTO) []domain.Track {
	tracks := make([]domain.Track, 0, len(songs))
	for _, s := range songs {
		if s.SongName == "" || s.Singer == "" {
			continue
		}
		tracks = append(tracks, domain.Track{
			Source:  domain.SourceQQMusic,
			ID:      s.SongMid,
			Title:   s.SongName,
			Artist:  s.Singer,
			Quality: mapQuality(s.Level),
		})
	}
	return tracks
}

// mapDetail converts a raw detail record, resolving relative cover URLs
func mapDetail(d detailDTO, baseURL string) (*domain.SongDetail, error) {
	title := d.SongName
	if title == "" {
		title = d.Name
	}
	if title == "" {
		return nil, &domain.ValidationError{Source: domain.SourceQQMusic, Err: domain.ErrMissingTitle}
	}

	return &domain.SongDetail{
		Source:    domain.SourceQQMusic,
		Title:     title,
		Artist:    d.Singer,
		CoverURL:  resolveURL(d.Cover, baseURL),
		StreamURL: d.PlayURL,
		Lyric:     d.Lyric,
		Quality:   mapQuality(d.Level),
	}, nil
}

func resolveURL(u, baseURL string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(u, "/")
}
