package gps

import "math"

// normalizeAzimuth wraps any value into [0, 360). NaN and infinities come out as NaN.
func normalizeAzimuth(dd float64) float64 {
	if dd < 0 {
		dd += 360 * math.Ceil(-dd/360)
	}
	return math.Mod(dd, 360)
}

// normalizeLatitude reflects values beyond a pole back towards the equator,
// flipping hemisphere once for every 180 degrees travelled.
func normalizeLatitude(dd float64) float64 {
	if math.IsNaN(dd) || math.IsInf(dd, 0) || (dd >= -90 && dd <= 90) {
		return dd
	}
	flips := math.Floor(dd / 180)
	if dd < 0 {
		flips++
	}
	v := math.Mod(dd, 180)
	if v > 90 {
		v = 180 - v
	}
	if v < -90 {
		v = -180 - v
	}
	if math.Mod(flips, 2) != 0 {
		v = -v
	}
	return v
}

// normalizeLongitude folds values once across the antimeridian. It does not
// unwind several turns.
func normalizeLongitude(dd float64) float64 {
	switch {
	case math.IsNaN(dd) || math.IsInf(dd, 0):
		return dd
	case dd > 180:
		return -180 + math.Mod(dd, 180)
	case dd < -180:
		return 180 + math.Mod(dd, 180)
	}
	return dd
}
