package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/1hanchen1/music/internal/domain"
)

// ResultCache is the slice of the cache manager the orchestrator uses
type ResultCache interface {
	Get(query string) ([]domain.Track, bool)
	Set(query string, tracks []domain.Track)
}

// SearchService fans a query out to every configured source, merges the
// results and writes them through to the cache. Source order is the merge
// precedence.
type SearchService struct {
	sources []domain.MusicSource
	cache   ResultCache
	timeout time.Duration
	logger  *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(sources []domain.MusicSource, cache ResultCache, timeout time.Duration, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &SearchService{
		sources: sources,
		cache:   cache,
		timeout: timeout,
		logger:  logger,
	}
}

// outcome captures one source's settled fan-out branch
type outcome struct {
	tracks []domain.Track
	err    error
}

// Search returns the deduplicated union of all sources' results for query.
// A cache hit skips the network entirely. Individual source failures only
// shrink the result set; the call errors only when every source failed.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.Track, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	if hit, ok := s.cache.Get(query); ok {
		s.logger.Debug("search cache hit", "query", query, "results", len(hit))
		return hit, nil
	}

	// Issue every request before awaiting any; collect all outcomes
	// rather than short-circuiting on the first failure.
	outcomes := make([]outcome, len(s.sources))
	var wg sync.WaitGroup
	for i, src := range s.sources {
		wg.Add(1)
		go func(i int, src domain.MusicSource) {
			defer wg.Done()
			sctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()
			tracks, err := src.Search(sctx, query)
			outcomes[i] = outcome{tracks: tracks, err: err}
		}(i, src)
	}
	wg.Wait()

	var all []domain.Track
	failures := 0
	var firstErr error
	for i, out := range outcomes {
		if out.err != nil {
			failures++
			if firstErr == nil {
				firstErr = out.err
			}
			s.logger.Warn("source search failed", "source", s.sources[i].ID(), "error", out.err)
			continue
		}
		all = append(all, out.tracks...)
	}

	if len(s.sources) > 0 && failures == len(s.sources) {
		return nil, fmt.Errorf("%w: %v", domain.ErrAllSourcesFailed, firstErr)
	}

	merged := dedupe(all)
	s.logger.Debug("search complete", "query", query, "raw", len(all), "merged", len(merged))

	if len(merged) > 0 {
		s.cache.Set(query, merged)
	}
	return merged, nil
}

// dedupe collapses tracks sharing a dedup key, first seen wins. Input order
// follows source precedence, so a collision keeps the higher-priority
// source's item.
func dedupe(tracks []domain.Track) []domain.Track {
	seen := make(map[string]bool, len(tracks))
	out := make([]domain.Track, 0, len(tracks))
	for _, t := range tracks {
		key := t.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}
