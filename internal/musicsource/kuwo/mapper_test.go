package kuwo

import (
	"testing"

	"github.com/1hanchen1/music/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapTracksDropsIncompleteItems(t *testing.T) {
	songs := []songDTO{
		{RID: 7, Title: "Kept", Author: "Artist", BR: "2000kflac"},
		{RID: 8, Title: "", Author: "Artist"},
	}

	tracks := mapTracks(songs)
	require.Len(t, tracks, 1)
	assert.Equal(t, "7", tracks[0].ID)
	assert.Equal(t, domain.SourceKuwo, tracks[0].Source)
	assert.Equal(t, domain.QualityLossless, tracks[0].Quality)
}

func TestMapQualityUnknownLabel(t *testing.T) {
	assert.Equal(t, domain.QualityHQ, mapQuality("320kmp3"))
	assert.Equal(t, domain.QualityUnknown, mapQuality("64kaac"))
	assert.Equal(t, domain.QualityUnknown, mapQuality(""))
}

func TestMapDetailTitleAliases(t *testing.T) {
	d, err := mapDetail(detailDTO{Name: "Alias", Author: "A"}, "https://api.example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alias", d.Title)

	_, err = mapDetail(detailDTO{Author: "A"}, "https://api.example.com")
	require.ErrorIs(t, err, domain.ErrMissingTitle)
}
