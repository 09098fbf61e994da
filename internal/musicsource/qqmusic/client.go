package qqmusic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/1hanchen1/music/internal/config"
	"github.com/1hanchen1/music/internal/domain"
)

const successStatus = 1

// Client implements domain.MusicSource for the qqmusic API
type Client struct {
	baseURL    string
	bitrate    int
	limit      int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new qqmusic API client
func NewClient(cfg config.SourceConfig, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: cfg.URL,
		bitrate: cfg.Bitrate,
		limit:   cfg.Limit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) ID() domain.SourceID { return domain.SourceQQMusic }

// SearchURL builds the search request URL; qqmusic names the query
// parameter "w" and the count "n"
func (c *Client) SearchURL(query string) string {
	params := url.Values{}
	params.Set("w", query)
	params.Set("n", strconv.Itoa(c.limit))
	params.Set("q", strconv.Itoa(qualityHint(c.bitrate)))
	return fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
}

// DetailURL builds the detail request URL for one track
func (c *Client) DetailURL(id, query string) string {
	params := url.Values{}
	params.Set("songmid", id)
	params.Set("w", query)
	params.Set("q", strconv.Itoa(qualityHint(c.bitrate)))
	return fmt.Sprintf("%s/detail?%s", c.baseURL, params.Encode())
}

// qualityHint maps a kbps bitrate preference onto qqmusic's level domain
func qualityHint(bitrate int) int {
	switch {
	case bitrate >= 999:
		return 4
	case bitrate >= 320:
		return 3
	case bitrate >= 192:
		return 2
	default:
		return 1
	}
}

// Search queries the source; malformed bodies and envelopes degrade to an
// empty result list
func (c *Client) Search(ctx context.Context, query string) ([]domain.Track, error) {
	body, err := c.doRequest(ctx, c.SearchURL(query))
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		c.logger.Warn("qqmusic search parse error", "error", err)
		return nil, nil
	}
	if resp.Status != successStatus {
		c.logger.Warn("qqmusic search envelope error", "status", resp.Status)
		return nil, nil
	}

	return mapTracks(resp.Data), nil
}

// Detail fetches and normalizes one track's detail record
func (c *Client) Detail(ctx context.Context, id, query string) (*domain.SongDetail, error) {
	body, err := c.doRequest(ctx, c.DetailURL(id, query))
	if err != nil {
		return nil, err
	}

	var resp detailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("qqmusic: %w: %v", domain.ErrBadEnvelope, err)
	}
	if resp.Status != successStatus {
		return nil, fmt.Errorf("qqmusic: %w: status %d", domain.ErrBadEnvelope, resp.Status)
	}

	return mapDetail(resp.Data, c.baseURL)
}

// doRequest performs a GET and returns the body for 200 responses
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("qqmusic request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Source: domain.SourceQQMusic, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Source: domain.SourceQQMusic, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.TransportError{
			Source: domain.SourceQQMusic,
			Err:    fmt.Errorf("unexpected status code: %d", resp.StatusCode),
		}
	}

	return body, nil
}
