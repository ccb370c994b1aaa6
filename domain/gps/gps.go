package gps

import (
	"encoding/json"
	"fmt"
	"strings"
)

var (
	Unknown *Coordinates
)

// Coordinates is a position on the earth's surface
type Coordinates struct {
	Lat  Latitude
	Long Longitude
}

func (gps Coordinates) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lat  float64 `json:"lat"`
		Long float64 `json:"long"`
	}{
		Lat:  gps.Lat.DecimalDegrees(),
		Long: gps.Long.DecimalDegrees(),
	})
}

func (gps *Coordinates) UnmarshalJSON(buf []byte) error {
	var c struct {
		Lat  float64 `json:"lat"`
		Long float64 `json:"long"`
	}
	if err := json.Unmarshal(buf, &c); err != nil {
		return err
	}
	gps.Lat = NewLatitude(c.Lat)
	gps.Long = NewLongitude(c.Long)
	return nil
}

func NewCoordinates(lat, long float64) Coordinates {
	return Coordinates{Lat: NewLatitude(lat), Long: NewLongitude(long)}
}

// ParseCoordinates reads a latitude and a longitude separated by a comma, a
// semicolon or, for two single-token values, a space.
func ParseCoordinates(s string, c *Culture) (Coordinates, error) {
	c = cultureOrCurrent(c)
	var parts []string
	for _, sep := range []string{";", ","} {
		if sep == c.DecimalSeparator {
			continue
		}
		if strings.Contains(s, sep) {
			parts = strings.SplitN(s, sep, 2)
			break
		}
	}
	if parts == nil {
		parts = strings.Fields(s)
	}
	if len(parts) != 2 {
		return Coordinates{}, formatError(s, nil)
	}
	lat, err := ParseLatitude(parts[0], c)
	if err != nil {
		return Coordinates{}, err
	}
	long, err := ParseLongitude(parts[1], c)
	if err != nil {
		return Coordinates{}, err
	}
	return Coordinates{Lat: lat, Long: long}, nil
}

// Normalize normalizes both latitude and longitude
func (c Coordinates) Normalize() Coordinates {
	return Coordinates{Lat: c.Lat.Normalize(), Long: c.Long.Normalize()}
}

func (c Coordinates) IsInvalid() bool {
	return c.Lat.IsInvalid() || c.Long.IsInvalid()
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%s, %s", c.Lat, c.Long)
}

// Format renders latitude and longitude with their own format strings
func (c Coordinates) Format(latFormat, longFormat string, culture *Culture) (string, error) {
	lat, err := c.Lat.Format(latFormat, culture)
	if err != nil {
		return "", err
	}
	long, err := c.Long.Format(longFormat, culture)
	if err != nil {
		return "", err
	}
	return lat + " " + long, nil
}

func (c *Coordinates) ISO6709() string {
	return fmt.Sprintf("%+010.6f%+011.6f/", c.Lat.DecimalDegrees(), c.Long.DecimalDegrees())
}

func init() {
	Unknown = &Coordinates{}
}
