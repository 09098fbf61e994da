// Package musicsource selects and constructs the per-API adapters.
// Each source lives in its own sub-package with a client (request URLs,
// transport), dto (response envelopes), and mapper (normalization).
package musicsource

import (
	"fmt"
	"log/slog"

	"github.com/1hanchen1/music/internal/config"
	"github.com/1hanchen1/music/internal/domain"
	"github.com/1hanchen1/music/internal/musicsource/kuwo"
	"github.com/1hanchen1/music/internal/musicsource/netease"
	"github.com/1hanchen1/music/internal/musicsource/qqmusic"
)

// New creates the adapter for a single source.
// Unknown identifiers fail before any network activity.
func New(id domain.SourceID, cfg *config.SourcesConfig, logger *slog.Logger) (domain.MusicSource, error) {
	switch id {
	case domain.SourceNetease:
		return netease.NewClient(cfg.Netease, cfg.Timeout(), logger), nil
	case domain.SourceQQMusic:
		return qqmusic.NewClient(cfg.QQMusic, cfg.Timeout(), logger), nil
	case domain.SourceKuwo:
		return kuwo.NewClient(cfg.Kuwo, cfg.Timeout(), logger), nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSource, id)
	}
}

// NewAll builds every configured adapter in precedence order. The order
// decides which source wins when merged results collide.
func NewAll(cfg *config.SourcesConfig, logger *slog.Logger) ([]domain.MusicSource, error) {
	order := cfg.Order
	if len(order) == 0 {
		for _, id := range domain.DefaultSourceOrder {
			order = append(order, string(id))
		}
	}

	sources := make([]domain.MusicSource, 0, len(order))
	for _, name := range order {
		src, err := New(domain.SourceID(name), cfg, logger)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}
