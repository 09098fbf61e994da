package netease

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/1hanchen1/music/internal/config"
	"github.com/1hanchen1/music/internal/domain"
	"github.com/1hanchen1/music/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	cfg := config.SourceConfig{URL: baseURL, Bitrate: 320, Limit: 30}
	return NewClient(cfg, 2*time.Second, log.NullLogger())
}

func TestSearchURLEncodesQueryOnce(t *testing.T) {
	c := testClient("https://api.example.com")
	u, err := url.Parse(c.SearchURL("hello world & more"))
	require.NoError(t, err)

	params := u.Query()
	assert.Equal(t, "hello world & more", params.Get("keywords"))
	assert.Equal(t, "30", params.Get("limit"))
	assert.Equal(t, "320000", params.Get("br"))
	assert.Equal(t, "/search", u.Path)
}

func TestSearchParsesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tears", r.URL.Query().Get("keywords"))
		w.Write([]byte(`{"code":200,"result":{"songs":[
			{"id":42,"name":"Tears","artist":"X","quality":320000},
			{"id":43,"name":"","artist":"Y"}
		]}}`))
	}))
	defer srv.Close()

	tracks, err := testClient(srv.URL).Search(context.Background(), "tears")
	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "42", tracks[0].ID)
}

func TestSearchBadEnvelopeIsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":500}`))
	}))
	defer srv.Close()

	tracks, err := testClient(srv.URL).Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestSearchMalformedBodyIsEmptyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer srv.Close()

	tracks, err := testClient(srv.URL).Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestSearchHTTPErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Search(context.Background(), "q")
	var terr *domain.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, domain.SourceNetease, terr.Source)
}

func TestDetailSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/song", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("id"))
		w.Write([]byte(`{"code":200,"data":{
			"name":"Tears","artist":"X","pic":"/cover.jpg",
			"url":"https://cdn.example.com/s.mp3","lyric":"[00:00] la","quality":999000
		}}`))
	}))
	defer srv.Close()

	d, err := testClient(srv.URL).Detail(context.Background(), "42", "tears")
	require.NoError(t, err)
	assert.Equal(t, "Tears", d.Title)
	assert.Equal(t, srv.URL+"/cover.jpg", d.CoverURL)
	assert.Equal(t, domain.QualityLossless, d.Quality)
}

func TestDetailBadEnvelopeFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":404,"data":{}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Detail(context.Background(), "42", "tears")
	require.ErrorIs(t, err, domain.ErrBadEnvelope)
}
