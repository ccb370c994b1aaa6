package views

import (
	"time"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
)

type Waypoint struct {
	ID        library.WaypointID `json:"id"`
	Links     Links              `json:"links"`
	Name      string             `json:"name"`
	Position  gps.Coordinates    `json:"position"`
	Latitude  string             `json:"latitude"`
	Longitude string             `json:"longitude"`
	Heading   gps.Azimuth        `json:"heading"`
	Compass   string             `json:"compass"`
	Datum     string             `json:"datum"`
	Created   time.Time          `json:"created"`
}

var waypointLinks = LinkProvider{
	patterns: map[string]string{
		"self": "/waypoints/%s",
	},
}

// WaypointFrom renders the position with the formats of the given culture
func WaypointFrom(w *library.Waypoint, c *gps.Culture) Waypoint {
	lat, _ := w.Position.Lat.Format("", c)
	long, _ := w.Position.Long.Format("", c)
	return Waypoint{
		ID:        w.ID,
		Links:     waypointLinks.LinksFor(w.ID),
		Name:      w.Name,
		Position:  w.Position,
		Latitude:  lat,
		Longitude: long,
		Heading:   w.Heading,
		Compass:   w.Heading.CompassName(),
		Datum:     w.DatumOf().Name(),
		Created:   w.Created,
	}
}
