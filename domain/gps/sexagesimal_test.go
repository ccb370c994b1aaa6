package gps

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDecimalDegrees(t *testing.T) {
	data := []struct {
		h, m     int
		s        float64
		expected float64
	}{
		{39, 12, 10, 39 + 12.0/60 + 10.0/3600},
		{-10, 30, 0, -10.5},
		{0, 30, 0, 0.5},
		{-10, -30, 0, -10.5},
		{10, -30, 0, 10.5},
		{179, 59, 59.5, 179 + 59.0/60 + 59.5/3600},
	}
	for _, d := range data {
		assert.InDelta(t, d.expected, ToDecimalDegrees(d.h, d.m, d.s), 1e-12, "%d %d %f", d.h, d.m, d.s)
	}
}

func TestToDecimalDegreesHemisphere(t *testing.T) {
	magnitude := 39 + 12.0/60 + 10.0/3600
	assert.InDelta(t, -magnitude, ToDecimalDegreesHemisphere(39, 12, 10, HemisphereSouth), 1e-12)
	assert.InDelta(t, magnitude, ToDecimalDegreesHemisphere(-39, 12, 10, HemisphereNorth), 1e-12)
	assert.InDelta(t, -magnitude, ToDecimalDegreesHemisphere(-39, 12, 10, HemisphereNone), 1e-12)
	assert.InDelta(t, -magnitude, ToDecimalDegreesHemisphere(39, 12, 10, HemisphereWest), 1e-12)
	assert.InDelta(t, 45.5, ToDecimalDegreesDMHemisphere(-45, 30, HemisphereEast), 1e-12)
	assert.InDelta(t, -45.5, ToDecimalDegreesDMHemisphere(45, 30, HemisphereWest), 1e-12)
	assert.InDelta(t, -45.5, ToDecimalDegreesDM(-45, 30), 1e-12)
}

func TestLatitudeFromHemisphere(t *testing.T) {
	lat := NewLatitudeDMSHemisphere(39, 12, 10, HemisphereSouth)
	assert.InDelta(t, -(39 + 12.0/60 + 10.0/3600), lat.DecimalDegrees(), 1e-12)
	assert.Equal(t, HemisphereSouth, lat.Hemisphere())
}

func TestComponentsReconstruction(t *testing.T) {
	minutes := []int{0, 1, 30, 59}
	seconds := []float64{0, 0.5, 10, 59.25}
	for _, h := range []int{0, 1, 45, 89} {
		for _, m := range minutes {
			for _, s := range seconds {
				lat := NewLatitudeDMS(h, m, s)
				assert.Equal(t, h, lat.Hours(), "hours of %d %d %f", h, m, s)
				assert.Equal(t, m, lat.Minutes(), "minutes of %d %d %f", h, m, s)
				assert.InDelta(t, s, lat.Seconds(), 1e-6, "seconds of %d %d %f", h, m, s)
			}
		}
	}
	for _, h := range []int{0, 1, 90, 179, 359} {
		for _, m := range minutes {
			for _, s := range seconds {
				az := NewAzimuthDMS(h, m, s)
				assert.Equal(t, h, az.Hours(), "hours of %d %d %f", h, m, s)
				assert.Equal(t, m, az.Minutes(), "minutes of %d %d %f", h, m, s)
				assert.InDelta(t, s, az.Seconds(), 1e-6, "seconds of %d %d %f", h, m, s)
			}
		}
	}
}

func TestNegativeComponents(t *testing.T) {
	lat := NewLatitudeDMS(-10, 30, 15)
	assert.Equal(t, -10, lat.Hours())
	assert.Equal(t, 30, lat.Minutes())
	assert.InDelta(t, 15, lat.Seconds(), 1e-9)
	assert.InDelta(t, 30.25, lat.DecimalMinutes(), 1e-9)
}

func TestComponentsOfSentinels(t *testing.T) {
	assert.True(t, math.IsNaN(InvalidLatitude.Seconds()))
	assert.True(t, math.IsNaN(InvalidLatitude.DecimalMinutes()))
	assert.Equal(t, 0, InvalidLatitude.Hours())
	assert.True(t, math.IsInf(InfiniteAzimuth.Seconds(), 1))
}

func TestRoundSeconds(t *testing.T) {
	lat, err := NewLatitudeDMS(10, 20, 29.7).RoundSeconds(1)
	assert.NoError(t, err)
	assert.InDelta(t, 10+20.0/60+30.0/3600, lat.DecimalDegrees(), 1e-12)

	lon, err := NewLongitudeDMS(-10, 20, 29.7).RoundSeconds(15)
	assert.NoError(t, err)
	assert.InDelta(t, -(10 + 20.0/60 + 30.0/3600), lon.DecimalDegrees(), 1e-12)

	_, err = NewAzimuth(10).RoundSeconds(0)
	assert.Equal(t, ErrInvalidInterval, err)
}

func TestToHemisphere(t *testing.T) {
	lat, err := NewLatitude(45).ToHemisphere(HemisphereSouth)
	assert.NoError(t, err)
	assert.Equal(t, -45.0, lat.DecimalDegrees())

	_, err = NewLatitude(45).ToHemisphere(HemisphereNone)
	assert.Equal(t, ErrInvalidHemisphere, err)
	_, err = NewLatitude(45).ToHemisphere(HemisphereEast)
	assert.Equal(t, ErrInvalidHemisphere, err)

	lon, err := NewLongitude(-30).ToHemisphere(HemisphereEast)
	assert.NoError(t, err)
	assert.Equal(t, 30.0, lon.DecimalDegrees())
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 50.0, NewAzimuth(45).Add(5).DecimalDegrees())
	assert.Equal(t, 40.0, NewLatitude(45).Subtract(5).DecimalDegrees())
	assert.Equal(t, 90.0, NewLongitude(45).Multiply(2).DecimalDegrees())
	assert.Equal(t, 22.5, NewLongitude(45).Divide(2).DecimalDegrees())
	assert.Equal(t, 46.0, NewLatitude(45).Increment().DecimalDegrees())
	assert.Equal(t, -1, NewLatitude(10).Compare(NewLatitude(11)))
	assert.Equal(t, 0, InvalidLatitude.Compare(InvalidLatitude))
	assert.True(t, InvalidAzimuth.Equal(InvalidAzimuth))
	assert.True(t, NewLatitude(45.123456).EqualWithPrecision(NewLatitude(45.1234561), 6))
	assert.Equal(t, 45.12, NewLatitude(45.123456).Round(2).DecimalDegrees())
	assert.InDelta(t, math.Pi/2, float64(East.ToRadians()), 1e-15)
	assert.InDelta(t, 180, LongitudeFromRadians(math.Pi).DecimalDegrees(), 1e-12)
}

func TestParseHemisphere(t *testing.T) {
	for s, expected := range map[string]Hemisphere{"N": HemisphereNorth, "s": HemisphereSouth, "east": HemisphereEast, " W ": HemisphereWest} {
		h, found := ParseHemisphere(s)
		assert.True(t, found, s)
		assert.Equal(t, expected, h, s)
	}
	_, found := ParseHemisphere("X")
	assert.False(t, found)
	_, found = ParseHemisphere("")
	assert.False(t, found)
}
