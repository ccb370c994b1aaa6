// Package gps contains the angular value types used to describe positions and
// directions on the earth: Azimuth, Latitude and Longitude. All of them are
// immutable, every operation returns a new value.
package gps

import (
	"math"
	"strconv"
)

// Angle is implemented by Azimuth, Latitude and Longitude
type Angle interface {
	DecimalDegrees() float64
	Format(format string, c *Culture) (string, error)
	String() string
}

// kind carries what differs between azimuths, latitudes and longitudes
type kind struct {
	precision     int
	positive      Hemisphere
	negative      Hemisphere
	compass       bool
	defaultFormat string
}

var (
	azimuthKind = kind{
		precision:     12,
		compass:       true,
		defaultFormat: AzimuthDecimalFormat,
	}
	latitudeKind = kind{
		precision:     13,
		positive:      HemisphereNorth,
		negative:      HemisphereSouth,
		defaultFormat: LatitudeFormat,
	}
	longitudeKind = kind{
		precision:     12,
		positive:      HemisphereEast,
		negative:      HemisphereWest,
		defaultFormat: LongitudeFormat,
	}
)

func (k kind) hasHemispheres() bool {
	return k.positive != HemisphereNone
}

func (k kind) hemisphereOf(dd float64) Hemisphere {
	if !k.hasHemispheres() || math.IsNaN(dd) {
		return HemisphereNone
	}
	if dd < 0 {
		return k.negative
	}
	return k.positive
}

// toHemisphere moves the magnitude of dd into the requested hemisphere
func (k kind) toHemisphere(dd float64, h Hemisphere) (float64, error) {
	if h != k.positive && h != k.negative {
		return dd, ErrInvalidHemisphere
	}
	return combine(h.negative(), 0, math.Abs(dd)), nil
}

func equalDegrees(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func compareDegrees(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	case a == b:
		return 0
	case math.IsNaN(a) && math.IsNaN(b):
		return 0
	case math.IsNaN(a):
		return -1
	}
	return 1
}

// roundSeconds snaps the seconds of dd to a multiple of interval
func roundSeconds(dd float64, interval float64, precision int) (float64, error) {
	if interval == 0 {
		return dd, ErrInvalidInterval
	}
	if math.IsNaN(dd) || math.IsInf(dd, 0) {
		return dd, nil
	}
	p := decompose(dd, precision)
	seconds := math.Round(p.seconds/interval) * interval
	return combine(dd < 0, abs(p.hours), float64(p.minutes)/60+seconds/3600), nil
}

// formatG17 is the culture independent round-trip representation
func formatG17(dd float64) string {
	return strconv.FormatFloat(dd, 'g', 17, 64)
}

func parseG17(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// Radian is an angle in radians
type Radian float64

// RadianFromDegrees converts decimal degrees to radians
func RadianFromDegrees(dd float64) Radian {
	return Radian(dd * math.Pi / 180)
}

// Degrees converts r to decimal degrees
func (r Radian) Degrees() float64 {
	return float64(r) * 180 / math.Pi
}
