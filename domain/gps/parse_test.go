package gps

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParseAzimuthCompassNames(t *testing.T) {
	data := map[string]float64{
		"NE":              45,
		"ne":              45,
		"Northeast":       45,
		"NORTH-EAST":      45,
		"north east":      45,
		" NorthEast ":     45,
		"North-Northwest": 337.5,
		"NNW":             337.5,
		"E":               90,
		"South":           180,
		"west southwest":  247.5,
	}
	for s, expected := range data {
		a, err := ParseAzimuth(s, Invariant)
		require.NoError(t, err, s)
		assert.Equal(t, expected, a.DecimalDegrees(), s)
	}
}

func TestParseAzimuthDegrees(t *testing.T) {
	data := map[string]float64{
		"":           0,
		"123.5":      123.5,
		"123°30'":    123.5,
		`123°30'36"`: 123.51,
		"400":        400,
		"-10":        -10,
		"-0 30":      -0.5,
		"1.5E-2":     0.015,
		"Empty":      0,
	}
	for s, expected := range data {
		a, err := ParseAzimuth(s, Invariant)
		require.NoError(t, err, s)
		assert.InDelta(t, expected, a.DecimalDegrees(), 1e-12, s)
	}
}

func TestParseLatitude(t *testing.T) {
	data := map[string]float64{
		`39°12'10"S`: -(39 + 12.0/60 + 10.0/3600),
		`39°12'10"N`: 39 + 12.0/60 + 10.0/3600,
		"N 39.5":     39.5,
		"39.5S":      -39.5,
		"39.5 s":     -39.5,
		"-39.5":      -39.5,
		"-39.5 N":    39.5,
		"39 30 S":    -39.5,
		"39 30.5":    39 + 30.5/60,
		"0391210":    39 + 12.0/60 + 10.0/3600,
		"-0391210":   -(39 + 12.0/60 + 10.0/3600),
		"South 12.5": -12.5,
		"12.5 north": 12.5,
	}
	for s, expected := range data {
		lat, err := ParseLatitude(s, Invariant)
		require.NoError(t, err, s)
		assert.InDelta(t, expected, lat.DecimalDegrees(), 1e-12, s)
	}
}

func TestParseLongitude(t *testing.T) {
	data := map[string]float64{
		"122 30 W":         -122.5,
		"122°30'W":         -122.5,
		`010°30'00.0000"E`: 10.5,
		"West 10.5":        -10.5,
		"10.5 East":        10.5,
		"-10.5":            -10.5,
		"1.5E-2":           0.015,
		"1.5e-2":           0.015,
		"1223000":          122.5,
		"-1223000":         -122.5,
		`179°59'59.9999"W`: -(179 + 59.0/60 + 59.9999/3600),
	}
	for s, expected := range data {
		lon, err := ParseLongitude(s, Invariant)
		require.NoError(t, err, s)
		assert.InDelta(t, expected, lon.DecimalDegrees(), 1e-12, s)
	}
}

func TestParseSentinels(t *testing.T) {
	lat, err := ParseLatitude("Infinity", Invariant)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lat.DecimalDegrees(), 1))

	lon, err := ParseLongitude("-Infinity", Invariant)
	require.NoError(t, err)
	assert.True(t, math.IsInf(lon.DecimalDegrees(), -1))

	lon, err = ParseLongitude("Empty", Invariant)
	require.NoError(t, err)
	assert.True(t, lon.IsEmpty())

	lat, err = ParseLatitude("NaN", Invariant)
	require.NoError(t, err)
	assert.True(t, lat.IsInvalid())
}

func TestParseFractionalPlacement(t *testing.T) {
	for _, s := range []string{"39.5 30", "39.5 30 10", "39 30.5 10"} {
		_, err := ParseLatitude(s, Invariant)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrFractionalPlacement), s)
		assert.True(t, errors.Is(err, ErrInvalidFormat), s)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, s := range []string{"abc", "12 x", "12 30 y", "--12"} {
		_, err := ParseLongitude(s, Invariant)
		require.Error(t, err, s)
		assert.True(t, errors.Is(err, ErrInvalidFormat), s)
		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, s, formatErr.Input)
	}
}

func TestParseWithCulture(t *testing.T) {
	de := CultureFor(language.German)
	lat, err := ParseLatitude("39,5 S", de)
	require.NoError(t, err)
	assert.Equal(t, -39.5, lat.DecimalDegrees())

	lat, err = ParseLatitude("39 30,5", de)
	require.NoError(t, err)
	assert.InDelta(t, 39+30.5/60, lat.DecimalDegrees(), 1e-12)

	_, err = ParseLatitude("39,5 30", de)
	assert.True(t, errors.Is(err, ErrFractionalPlacement))

	// "." groups thousands in German
	az, err := ParseAzimuth("1.234,5", de)
	require.NoError(t, err)
	assert.Equal(t, 1234.5, az.DecimalDegrees())
}

func TestParseCulture(t *testing.T) {
	c, err := ParseCulture("de_CH.UTF-8")
	require.NoError(t, err)
	assert.Equal(t, ",", c.DecimalSeparator)

	c, err = ParseCulture("en-US")
	require.NoError(t, err)
	assert.Equal(t, ".", c.DecimalSeparator)

	c, err = ParseCulture("C")
	require.NoError(t, err)
	assert.Equal(t, Invariant, c)

	_, err = ParseCulture("not a language")
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, found := ParseDirection("south-southeast")
	assert.True(t, found)
	assert.Equal(t, SSE, d)
	assert.Equal(t, "SSE", d.Code())
	assert.Equal(t, "South-Southeast", d.Name())
	assert.Equal(t, 157.5, d.Azimuth().DecimalDegrees())

	_, found = ParseDirection("upwards")
	assert.False(t, found)
}
