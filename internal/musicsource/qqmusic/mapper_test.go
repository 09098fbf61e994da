package qqmusic

import (
	"testing"

	"github.com/1hanchen1/music/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTracksDropsIncompleteItems(t *testing.T) {
	songs := []songDTO{
		{SongMid: "m1", SongName: "Kept", Singer: "Artist", Level: 3},
		{SongMid: "m2", SongName: "No Singer", Singer: ""},
		{SongMid: "m3", SongName: "", Singer: "Artist"},
	}

	tracks := mapTracks(songs)
	require.Len(t, tracks, 1)
	assert.Equal(t, "m1", tracks[0].ID)
	assert.Equal(t, domain.SourceQQMusic, tracks[0].Source)
	assert.Equal(t, domain.QualityHQ, tracks[0].Quality)
}

func TestMapQualityLevels(t *testing.T) {
	assert.Equal(t, domain.QualityStandard, mapQuality(1))
	assert.Equal(t, domain.QualityLossless, mapQuality(4))
	assert.Equal(t, domain.QualityUnknown, mapQuality(9))
}

func TestMapDetailTitleAliasesAndCover(t *testing.T) {
	d, err := mapDetail(detailDTO{Name: "Alias Only", Singer: "A", Cover: "img/c.png"}, "https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alias Only", d.Title)
	assert.Equal(t, "https://api.example.com/img/c.png", d.CoverURL)

	_, err = mapDetail(detailDTO{Singer: "A"}, "https://api.example.com")
	require.ErrorIs(t, err, domain.ErrMissingTitle)
}
