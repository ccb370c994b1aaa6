package views

import (
	"math"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
)

// Angle is the representation of a parsed angle. Degrees and the components
// are omitted for NaN and infinite values, JSON has no literal for them.
type Angle struct {
	Kind       string   `json:"kind"`
	Input      string   `json:"input"`
	Formatted  string   `json:"formatted"`
	Degrees    *float64 `json:"degrees,omitempty"`
	Hours      *int     `json:"hours,omitempty"`
	Minutes    *int     `json:"minutes,omitempty"`
	Seconds    *float64 `json:"seconds,omitempty"`
	Hemisphere string   `json:"hemisphere,omitempty"`
	Direction  string   `json:"direction,omitempty"`
	Normalized bool     `json:"normalized"`
}

type components interface {
	gps.Angle
	Hours() int
	Minutes() int
	Seconds() float64
	IsNormalized() bool
}

func AngleFrom(kind, input, formatted string, a gps.Angle) Angle {
	v := Angle{Kind: kind, Input: input, Formatted: formatted}
	if c, ok := a.(components); ok {
		v.Normalized = c.IsNormalized()
		if dd := a.DecimalDegrees(); !math.IsNaN(dd) && !math.IsInf(dd, 0) {
			hours, minutes, seconds := c.Hours(), c.Minutes(), c.Seconds()
			v.Degrees, v.Hours, v.Minutes, v.Seconds = &dd, &hours, &minutes, &seconds
		}
	}
	switch angle := a.(type) {
	case gps.Azimuth:
		if !angle.IsInvalid() && !angle.IsInfinity() {
			v.Direction = angle.Direction().Code()
		}
	case gps.Latitude:
		v.Hemisphere = angle.Hemisphere().String()
	case gps.Longitude:
		v.Hemisphere = angle.Hemisphere().String()
	}
	return v
}
