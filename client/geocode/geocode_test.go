package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable() *Fixed {
	return NewFixed(map[string]LatLng{
		"Laurelhurst Park, Portland, OR": {Lat: 45.5215, Lng: -122.6253},
		"Mount Tabor Park, Portland, OR": {Lat: 45.5118, Lng: -122.5944},
	})
}

func TestFixedGeocode(t *testing.T) {
	g := newTable()

	res, err := g.Geocode(context.Background(), "laurelhurst park, portland, or")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 45.5215, res[0].Location.Lat)

	_, err = g.Geocode(context.Background(), "nowhere")
	assert.Equal(t, "ZERO_RESULTS", Status(err))
}

func TestFixedSuggest(t *testing.T) {
	g := newTable()

	s, err := g.Suggest(context.Background(), "park")
	require.NoError(t, err)
	require.Len(t, s, 2)
	assert.Equal(t, "Laurelhurst Park", s[0].MainText)
	assert.Equal(t, "Portland, OR", s[0].SecondaryText)

	_, err = g.Suggest(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrZeroResults)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "", Status(nil))
	assert.Equal(t, "OVER_QUERY_LIMIT", Status(&StatusError{Status: "OVER_QUERY_LIMIT"}))
	assert.Equal(t, "boom", Status(errors.New("boom")))
}
