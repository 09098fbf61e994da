package kuwo

import (
	"strconv"
	"strings"

	"github.com/1hanchen1/music/internal/domain"
)

// qualityLabels maps kuwo bitrate labels to display tiers
var qualityLabels = map[string]string{
	"128kmp3":   domain.QualityStandard,
	"192kmp3":   domain.QualityHigher,
	"320kmp3":   domain.QualityHQ,
	"2000kflac": domain.QualityLossless,
}

func mapQuality(br string) string {
	if label, ok := qualityLabels[br]; ok {
		return label
	}
	return domain.QualityUnknown
}

// mapTracks converts raw search items to domain tracks, dropping items
// without a title or artist
func mapTracks(songs []songDTO) []domain.Track {
	tracks := make([]domain.Track, 0, len(songs))
	for _, s := range songs {
		if s.Title == "" || s.Author == "" {
			continue
		}
		tracks = append(tracks, domain.Track{
			Source:  domain.SourceKuwo,
			ID:      strconv.FormatInt(s.RID, 10),
			Title:   s.Title,
			Artist:  s.Author,
			Quality: mapQuality(s.BR),
		})
	}
	return tracks
}

// mapDetail converts a raw detail record, resolving relative cover URLs
func mapDetail(d detailDTO, baseURL string) (*domain.SongDetail, error) {
	title := d.Title
	if title == "" {
		title = d.Name
	}
	if title == "" {
		return nil, &domain.ValidationError{Source: domain.SourceKuwo, Err: domain.ErrMissingTitle}
	}

	return &domain.SongDetail{
		Source:    domain.SourceKuwo,
		Title:     title,
		Artist:    d.Author,
		CoverURL:  resolveURL(d.Pic, baseURL),
		StreamURL: d.URL,
		Lyric:     d.Lrc,
		Quality:   mapQuality(d.BR),
	}, nil
}

func resolveURL(u, baseURL string) string {
	if u == "" || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(u, "/")
}
