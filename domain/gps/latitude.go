package gps

import (
	"encoding/xml"
	"math"
)

// Latitude is the angular distance north (positive) or south (negative) of
// the equator. Values outside [-90, 90] are kept as given until Normalize.
type Latitude struct {
	dd float64
}

var (
	Equator           = Latitude{0}
	NorthPole         = Latitude{90}
	SouthPole         = Latitude{-90}
	TropicOfCancer    = Latitude{23.5}
	TropicOfCapricorn = Latitude{-23.5}
	MinimumLatitude   = Latitude{-90}
	MaximumLatitude   = Latitude{90}
	InvalidLatitude   = Latitude{math.NaN()}
	InfiniteLatitude  = Latitude{math.Inf(1)}
)

func NewLatitude(dd float64) Latitude {
	return Latitude{dd}
}

// NewLatitudeDMS builds a latitude from degrees, minutes and seconds, see ToDecimalDegrees
func NewLatitudeDMS(hours, minutes int, seconds float64) Latitude {
	return Latitude{ToDecimalDegrees(hours, minutes, seconds)}
}

func NewLatitudeDM(hours int, decimalMinutes float64) Latitude {
	return Latitude{ToDecimalDegreesDM(hours, decimalMinutes)}
}

// NewLatitudeDMSHemisphere builds a latitude whose sign is given by h
func NewLatitudeDMSHemisphere(hours, minutes int, seconds float64, h Hemisphere) Latitude {
	return Latitude{ToDecimalDegreesHemisphere(hours, minutes, seconds, h)}
}

func NewLatitudeDMHemisphere(hours int, decimalMinutes float64, h Hemisphere) Latitude {
	return Latitude{ToDecimalDegreesDMHemisphere(hours, decimalMinutes, h)}
}

// ParseLatitude reads a latitude such as "39°12'10\"S", "-39 12.5", "N 39.2"
// or "0391210". A nil culture means CurrentCulture.
func ParseLatitude(s string, c *Culture) (Latitude, error) {
	dd, err := parseDegrees(s, c, latitudeKind)
	return Latitude{dd}, err
}

func LatitudeFromRadians(r Radian) Latitude {
	return Latitude{r.Degrees()}
}

func (l Latitude) DecimalDegrees() float64 { return l.dd }
func (l Latitude) Hours() int              { return decompose(l.dd, latitudeKind.precision).hours }
func (l Latitude) Minutes() int            { return decompose(l.dd, latitudeKind.precision).minutes }
func (l Latitude) Seconds() float64        { return decompose(l.dd, latitudeKind.precision).seconds }
func (l Latitude) DecimalMinutes() float64 {
	return decompose(l.dd, latitudeKind.precision).decimalMinutes
}

// Hemisphere is North for values >= 0 and South otherwise
func (l Latitude) Hemisphere() Hemisphere {
	return latitudeKind.hemisphereOf(l.dd)
}

func (l Latitude) IsNormalized() bool { return l.dd >= -90 && l.dd <= 90 }
func (l Latitude) IsInvalid() bool    { return math.IsNaN(l.dd) }
func (l Latitude) IsInfinity() bool   { return math.IsInf(l.dd, 0) }
func (l Latitude) IsEmpty() bool      { return l.dd == 0 }

// Normalize brings the latitude into [-90, 90]. Going past a pole continues on
// the other side, so 100 becomes 80 and 185 becomes -5.
func (l Latitude) Normalize() Latitude {
	return Latitude{normalizeLatitude(l.dd)}
}

// Mirror returns the latitude at the same distance from the equator in the
// other hemisphere.
func (l Latitude) Mirror() Latitude {
	return Latitude{-normalizeLatitude(l.dd)}
}

// ToHemisphere keeps the magnitude and sets the sign from h, which must be North or South
func (l Latitude) ToHemisphere(h Hemisphere) (Latitude, error) {
	dd, err := latitudeKind.toHemisphere(l.dd, h)
	return Latitude{dd}, err
}

func (l Latitude) Add(degrees float64) Latitude      { return Latitude{l.dd + degrees} }
func (l Latitude) Subtract(degrees float64) Latitude { return Latitude{l.dd - degrees} }
func (l Latitude) Multiply(factor float64) Latitude  { return Latitude{l.dd * factor} }
func (l Latitude) Divide(divisor float64) Latitude   { return Latitude{l.dd / divisor} }
func (l Latitude) Increment() Latitude               { return Latitude{l.dd + 1} }
func (l Latitude) Decrement() Latitude               { return Latitude{l.dd - 1} }
func (l Latitude) Negate() Latitude                  { return Latitude{-l.dd} }
func (l Latitude) Floor() Latitude                   { return Latitude{math.Floor(l.dd)} }
func (l Latitude) Ceiling() Latitude                 { return Latitude{math.Ceil(l.dd)} }

// Round rounds the decimal degrees to the given number of decimals
func (l Latitude) Round(decimals int) Latitude {
	return Latitude{roundTo(l.dd, decimals)}
}

// RoundSeconds snaps the seconds to the nearest multiple of interval
func (l Latitude) RoundSeconds(interval float64) (Latitude, error) {
	dd, err := roundSeconds(l.dd, interval, latitudeKind.precision)
	return Latitude{dd}, err
}

// Compare returns -1, 0 or 1. NaN sorts before every number.
func (l Latitude) Compare(o Latitude) int { return compareDegrees(l.dd, o.dd) }
func (l Latitude) Equal(o Latitude) bool  { return equalDegrees(l.dd, o.dd) }

// EqualWithPrecision compares both values rounded to decimals
func (l Latitude) EqualWithPrecision(o Latitude, decimals int) bool {
	return equalDegrees(roundTo(l.dd, decimals), roundTo(o.dd, decimals))
}

func (l Latitude) ToRadians() Radian    { return RadianFromDegrees(l.dd) }
func (l Latitude) Azimuth() Azimuth     { return Azimuth{l.dd} }
func (l Latitude) Longitude() Longitude { return Longitude{l.dd} }

func (l Latitude) String() string {
	s, _ := l.Format("", Invariant)
	return s
}

// Format renders the latitude, the default format is LatitudeFormat
func (l Latitude) Format(format string, c *Culture) (string, error) {
	return render(l.dd, format, c, latitudeKind)
}

func (l Latitude) MarshalText() ([]byte, error) {
	return []byte(formatG17(l.dd)), nil
}

func (l *Latitude) UnmarshalText(text []byte) (err error) {
	l.dd, err = parseG17(string(text))
	return
}

func (l Latitude) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(formatG17(l.dd), start)
}

func (l *Latitude) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	l.dd, err = decodeXMLDegrees(d, start)
	return
}
