package library

import (
	"fmt"
	"strings"
	"time"

	"bitbucket.org/kleinnic74/geoangles/domain/datum"
	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"github.com/google/uuid"
)

// ErrNotFinite rejects NaN and infinite angles, they cannot be stored
var ErrNotFinite = fmt.Errorf("angle must be finite: %w", gps.ErrInvalidFormat)

// WaypointID is the unique identifier of a Waypoint
type WaypointID string

// Waypoint is a named position with an optional heading
type Waypoint struct {
	ID       WaypointID      `json:"id"`
	Name     string          `json:"name"`
	Position gps.Coordinates `json:"position"`
	Heading  gps.Azimuth     `json:"heading"`
	Datum    int             `json:"datum"`
	Created  time.Time       `json:"created"`
}

// NewWaypoint creates a waypoint with a new unique id on the WGS 84 datum.
// The position and heading are stored normalized.
func NewWaypoint(name string, position gps.Coordinates, heading gps.Azimuth) *Waypoint {
	return &Waypoint{
		ID:       WaypointID(uuid.New().String()),
		Name:     strings.TrimSpace(name),
		Position: position.Normalize(),
		Heading:  heading.Normalize(),
		Datum:    datum.WGS84.EPSGNumber(),
		Created:  time.Now().UTC(),
	}
}

// DatumOf resolves the datum of the waypoint, unknown EPSG numbers resolve to WGS 84
func (w *Waypoint) DatumOf() *datum.Datum {
	if d, found := datum.FromEPSGNumber(w.Datum); found {
		return d
	}
	return datum.WGS84
}

// ParseWaypoint creates a waypoint from angles written as text in the given
// culture. Position and heading must be finite, an empty heading is north.
func ParseWaypoint(name, position, heading, datumName string, c *gps.Culture) (*Waypoint, error) {
	pos, err := gps.ParseCoordinates(position, c)
	if err != nil {
		return nil, err
	}
	if pos.IsInvalid() || pos.Lat.IsInfinity() || pos.Long.IsInfinity() {
		return nil, &gps.FormatError{Input: position, Err: ErrNotFinite}
	}
	h, err := gps.ParseAzimuth(heading, c)
	if err != nil {
		return nil, err
	}
	if h.IsInvalid() || h.IsInfinity() {
		return nil, &gps.FormatError{Input: heading, Err: ErrNotFinite}
	}
	d, err := datum.Parse(datumName)
	if err != nil {
		return nil, err
	}
	w := NewWaypoint(name, pos, h)
	w.Datum = d.EPSGNumber()
	return w, nil
}
