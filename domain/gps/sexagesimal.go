package gps

import (
	"math"
	"strings"
)

// Hemisphere qualifies the sign of a latitude (North/South) or a longitude (East/West)
type Hemisphere int

const (
	HemisphereNone Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
	HemisphereEast
	HemisphereWest
)

var hemisphereNames = []string{"", "North", "South", "East", "West"}

func (h Hemisphere) String() string {
	if h < 0 || int(h) >= len(hemisphereNames) {
		return ""
	}
	return hemisphereNames[h]
}

// Letter returns the single letter abbreviation, or an empty string for HemisphereNone
func (h Hemisphere) Letter() string {
	s := h.String()
	if s == "" {
		return ""
	}
	return s[:1]
}

// ParseHemisphere reads a hemisphere letter or word, ignoring case
func ParseHemisphere(s string) (Hemisphere, bool) {
	s = strings.TrimSpace(s)
	for h := HemisphereNorth; h <= HemisphereWest; h++ {
		if strings.EqualFold(s, h.Letter()) || strings.EqualFold(s, h.String()) {
			return h, true
		}
	}
	return HemisphereNone, false
}

func (h Hemisphere) negative() bool {
	return h == HemisphereSouth || h == HemisphereWest
}

// ToDecimalDegrees combines degrees, minutes and seconds into decimal degrees.
// Only the sign of hours decides the sign of the result: minutes and seconds
// are taken as magnitudes, so callers must not pass negative minutes or seconds
// expecting them to be subtracted.
func ToDecimalDegrees(hours, minutes int, seconds float64) float64 {
	return combine(hours < 0, abs(hours), math.Abs(float64(minutes))/60+math.Abs(seconds)/3600)
}

// ToDecimalDegreesDM combines degrees and decimal minutes, with the same sign rule as ToDecimalDegrees
func ToDecimalDegreesDM(hours int, decimalMinutes float64) float64 {
	return combine(hours < 0, abs(hours), math.Abs(decimalMinutes)/60)
}

// ToDecimalDegreesHemisphere combines degrees, minutes and seconds using the
// hemisphere for the sign. Any sign of hours is ignored unless the hemisphere
// is HemisphereNone, in which case ToDecimalDegrees applies.
func ToDecimalDegreesHemisphere(hours, minutes int, seconds float64, h Hemisphere) float64 {
	if h == HemisphereNone {
		return ToDecimalDegrees(hours, minutes, seconds)
	}
	return combine(h.negative(), abs(hours), math.Abs(float64(minutes))/60+math.Abs(seconds)/3600)
}

// ToDecimalDegreesDMHemisphere is ToDecimalDegreesHemisphere for degrees and decimal minutes
func ToDecimalDegreesDMHemisphere(hours int, decimalMinutes float64, h Hemisphere) float64 {
	if h == HemisphereNone {
		return ToDecimalDegreesDM(hours, decimalMinutes)
	}
	return combine(h.negative(), abs(hours), math.Abs(decimalMinutes)/60)
}

func combine(negative bool, hours int, fraction float64) float64 {
	v := float64(hours) + fraction
	if negative {
		return -v
	}
	return v
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// components is the sexagesimal decomposition of a decimal degree value,
// rounded at the precision of the angle kind.
type components struct {
	hours          int
	minutes        int
	seconds        float64
	decimalMinutes float64
}

func decompose(dd float64, precision int) components {
	if math.IsNaN(dd) || math.IsInf(dd, 0) {
		return components{seconds: dd, decimalMinutes: dd}
	}
	h := math.Trunc(dd)
	fraction := math.Abs(dd-h) * 60
	minutes := math.Trunc(roundTo(fraction, precision-1))
	return components{
		hours:          int(h),
		minutes:        int(minutes),
		seconds:        roundTo((fraction-minutes)*60, precision-4),
		decimalMinutes: roundTo(fraction, precision-2),
	}
}

// roundTo rounds half to even at the given number of decimals
func roundTo(v float64, decimals int) float64 {
	if decimals > 15 {
		decimals = 15
	}
	if decimals < 0 {
		decimals = 0
	}
	p := math.Pow10(decimals)
	r := math.RoundToEven(v*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}
