package netease

import (
	"testing"

	"github.com/1hanchen1/music/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTracksDropsIncompleteItems(t *testing.T) {
	songs := []songDTO{
		{ID: 1, Name: "Kept", Artist: "Artist", Quality: 320000},
		{ID: 2, Name: "", Artist: "Artist"},
		{ID: 3, Name: "No Artist", Artist: ""},
	}

	tracks := mapTracks(songs)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Kept", tracks[0].Title)
	assert.Equal(t, "1", tracks[0].ID)
	assert.Equal(t, domain.SourceNetease, tracks[0].Source)
	assert.Equal(t, domain.QualityHQ, tracks[0].Quality)
}

func TestMapQualityUnknownCode(t *testing.T) {
	assert.Equal(t, domain.QualityLossless, mapQuality(999000))
	assert.Equal(t, domain.QualityUnknown, mapQuality(12345))
	assert.Equal(t, domain.QualityUnknown, mapQuality(0))
}

func TestMapDetailTitleAliases(t *testing.T) {
	d, err := mapDetail(detailDTO{SongName: "Alias Title", Artist: "A"}, "https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alias Title", d.Title)

	d, err = mapDetail(detailDTO{Name: "Primary", SongName: "Alias", Artist: "A"}, "https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "Primary", d.Title)

	_, err = mapDetail(detailDTO{Artist: "A"}, "https://api.example.com")
	require.ErrorIs(t, err, domain.ErrMissingTitle)
}

func TestMapDetailResolvesRelativeCover(t *testing.T) {
	d, err := mapDetail(detailDTO{Name: "Song", Pic: "/cover/1.jpg"}, "https://api.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/cover/1.jpg", d.CoverURL)

	d, err = mapDetail(detailDTO{Name: "Song", Pic: "https://cdn.example.com/1.jpg"}, "https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/1.jpg", d.CoverURL)
}
