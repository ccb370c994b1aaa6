package formats

import (
	"regexp"
	"strconv"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
)

var iso6709Pattern = regexp.MustCompile(`([-+]\d+\.?\d*)`)

// ParseISO6709 reads a position in the decimal degrees form of ISO 6709, as
// written by gps.Coordinates.ISO6709 and by phone cameras, e.g. "+48.2082+016.3738+171.000/".
// Any altitude is ignored.
func ParseISO6709(value string) (gps.Coordinates, error) {
	matches := iso6709Pattern.FindAllString(value, 3)
	if len(matches) < 2 {
		return gps.Coordinates{}, &gps.FormatError{Input: value, Err: gps.ErrInvalidFormat}
	}
	lat, err := strconv.ParseFloat(matches[0], 64)
	if err != nil {
		return gps.Coordinates{}, &gps.FormatError{Input: value, Err: err}
	}
	long, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return gps.Coordinates{}, &gps.FormatError{Input: value, Err: err}
	}
	return gps.NewCoordinates(lat, long), nil
}
