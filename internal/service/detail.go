package service

import (
	"context"
	"fmt"

	"github.com/1hanchen1/music/internal/domain"
)

// Detail fetches the detail record for one track from its source.
// An unknown source identifier fails before any network call; detail
// records are always fetched fresh, never cached.
func (s *SearchService) Detail(ctx context.Context, source domain.SourceID, id, query string) (*domain.SongDetail, error) {
	src := s.bySource(source)
	if src == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSource, source)
	}

	dctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	detail, err := src.Detail(dctx, id, query)
	if err != nil {
		s.logger.Error("detail fetch failed", "source", source, "id", id, "error", err)
		return nil, err
	}
	return detail, nil
}

// bySource returns the configured adapter for id, or nil
func (s *SearchService) bySource(id domain.SourceID) domain.MusicSource {
	for _, src := range s.sources {
		if src.ID() == id {
			return src
		}
	}
	return nil
}
