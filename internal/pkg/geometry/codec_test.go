package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/cycleroute-microservice/internal/pkg/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []orb.Point
	}{
		{"empty", "", []orb.Point{}},
		{"blank", "   ", []orb.Point{}},
		{"wkt linestring", "LINESTRING(-73.5 45.5,-73.6 45.62)", []orb.Point{{-73.5, 45.5}, {-73.6, 45.62}}},
		{"wkt point", "POINT(1 2)", []orb.Point{{1, 2}}},
		{"json array", "[[-73.5,45.5],[-73.6,45.62]]", []orb.Point{{-73.5, 45.5}, {-73.6, 45.62}}},
		{"loose pairs without fractions", "from 1 2 to -3 4.", []orb.Point{{1, 2}, {-3, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	got, err := Decode("no coordinates here")

	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrMalformedGeometry))
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = Decode("[[1]]")
	require.Error(t, err)
	assert.Empty(t, got)
}

func TestDecodeNullable(t *testing.T) {
	got, err := DecodeNullable(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	text := "LINESTRING(0 0,1 1)"
	got, err = DecodeNullable(&text)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	points := []orb.Point{
		{-73.567256, 45.501689},
		{-73.5, 45.000001},
		{0, 0},
		{179.999999, -89.123456},
	}

	text, err := Encode(points)
	require.NoError(t, err)

	decoded, err := Decode(text)
	require.NoError(t, err)
	require.Len(t, decoded, len(points))
	for i := range points {
		assert.InDelta(t, points[i][0], decoded[i][0], 1e-6)
		assert.InDelta(t, points[i][1], decoded[i][1], 1e-6)
	}
}

func TestEncode_EmptyAndFailure(t *testing.T) {
	text, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, EmptyJSON, text)

	text, err = Encode([]orb.Point{{math.NaN(), 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgerrors.ErrSerializationFailure))
	assert.Equal(t, EmptyJSON, text)
}

func TestEncodePolyline(t *testing.T) {
	points := []orb.Point{
		{-120.2, 38.5},
		{-120.95, 40.7},
		{-126.453, 43.252},
	}

	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", EncodePolyline(points))
	assert.Equal(t, "", EncodePolyline(nil))
}
