package gps

import (
	"math"
	"strings"
)

// Direction is one of the sixteen points of the compass rose
type Direction int

const (
	N Direction = iota
	NNE
	NE
	ENE
	E
	ESE
	SE
	SSE
	S
	SSW
	SW
	WSW
	W
	WNW
	NW
	NNW
)

const sectorWidth = 22.5

var directionCodes = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

var directionNames = [...]string{
	"North", "North-Northeast", "Northeast", "East-Northeast",
	"East", "East-Southeast", "Southeast", "South-Southeast",
	"South", "South-Southwest", "Southwest", "West-Southwest",
	"West", "West-Northwest", "Northwest", "North-Northwest",
}

// compassLookup maps every accepted spelling, upper-cased with dashes and
// spaces removed, to its direction.
var compassLookup = func() map[string]Direction {
	m := make(map[string]Direction, 2*len(directionCodes))
	for d := N; d <= NNW; d++ {
		m[directionCodes[d]] = d
		m[compassKey(directionNames[d])] = d
	}
	return m
}()

func compassKey(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.ToUpper(strings.TrimSpace(s)))
}

// Code returns the abbreviation of the direction, e.g. "NNE"
func (d Direction) Code() string {
	if d < N || d > NNW {
		return ""
	}
	return directionCodes[d]
}

// Name returns the full name of the direction, e.g. "North-Northeast"
func (d Direction) Name() string {
	if d < N || d > NNW {
		return ""
	}
	return directionNames[d]
}

func (d Direction) String() string {
	return d.Name()
}

// Azimuth returns the center bearing of the direction's sector
func (d Direction) Azimuth() Azimuth {
	return NewAzimuth(float64(d) * sectorWidth)
}

// ParseDirection accepts an abbreviation or a full name, case-insensitive,
// with or without dashes and spaces between the words.
func ParseDirection(s string) (Direction, bool) {
	d, found := compassLookup[compassKey(s)]
	return d, found
}

func directionOf(dd float64) Direction {
	n := normalizeAzimuth(dd)
	if math.IsNaN(n) {
		return N
	}
	return Direction(int(math.Floor((n+sectorWidth/2)/sectorWidth)) % 16)
}
