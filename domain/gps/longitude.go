package gps

import (
	"encoding/xml"
	"math"
)

// Longitude is the angular distance east (positive) or west (negative) of the
// prime meridian.
type Longitude struct {
	dd float64
}

var (
	PrimeMeridian         = Longitude{0}
	InternationalDateLine = Longitude{180}
	MinimumLongitude      = Longitude{-180}
	MaximumLongitude      = Longitude{180}
	InvalidLongitude      = Longitude{math.NaN()}
	InfiniteLongitude     = Longitude{math.Inf(1)}
)

func NewLongitude(dd float64) Longitude {
	return Longitude{dd}
}

func NewLongitudeDMS(hours, minutes int, seconds float64) Longitude {
	return Longitude{ToDecimalDegrees(hours, minutes, seconds)}
}

func NewLongitudeDM(hours int, decimalMinutes float64) Longitude {
	return Longitude{ToDecimalDegreesDM(hours, decimalMinutes)}
}

func NewLongitudeDMSHemisphere(hours, minutes int, seconds float64, h Hemisphere) Longitude {
	return Longitude{ToDecimalDegreesHemisphere(hours, minutes, seconds, h)}
}

func NewLongitudeDMHemisphere(hours int, decimalMinutes float64, h Hemisphere) Longitude {
	return Longitude{ToDecimalDegreesDMHemisphere(hours, decimalMinutes, h)}
}

// ParseLongitude reads a longitude such as "122°30'W", "-122 30", "1.5E-2".
// An 'E' followed by '-' is read as an exponent and not as East.
func ParseLongitude(s string, c *Culture) (Longitude, error) {
	dd, err := parseDegrees(s, c, longitudeKind)
	return Longitude{dd}, err
}

func LongitudeFromRadians(r Radian) Longitude {
	return Longitude{r.Degrees()}
}

func (l Longitude) DecimalDegrees() float64 {
	return l.dd
}

func (l Longitude) Hours() int {
	return decompose(l.dd, longitudeKind.precision).hours
}

func (l Longitude) Minutes() int {
	return decompose(l.dd, longitudeKind.precision).minutes
}

func (l Longitude) Seconds() float64 {
	return decompose(l.dd, longitudeKind.precision).seconds
}

func (l Longitude) DecimalMinutes() float64 {
	return decompose(l.dd, longitudeKind.precision).decimalMinutes
}

// Hemisphere is East for values >= 0 and West otherwise
func (l Longitude) Hemisphere() Hemisphere {
	return longitudeKind.hemisphereOf(l.dd)
}

func (l Longitude) IsNormalized() bool {
	return l.dd >= -180 && l.dd <= 180
}

func (l Longitude) IsInvalid() bool  { return math.IsNaN(l.dd) }
func (l Longitude) IsInfinity() bool { return math.IsInf(l.dd, 0) }
func (l Longitude) IsEmpty() bool    { return l.dd == 0 }

// Normalize folds values beyond ±180 once across the antimeridian, 190 becomes -170
func (l Longitude) Normalize() Longitude {
	return Longitude{normalizeLongitude(l.dd)}
}

// Mirror returns the longitude on the other side of the prime meridian
func (l Longitude) Mirror() Longitude {
	return Longitude{-normalizeLongitude(l.dd)}
}

// ToHemisphere keeps the magnitude and sets the sign from h, which must be East or West
func (l Longitude) ToHemisphere(h Hemisphere) (Longitude, error) {
	dd, err := longitudeKind.toHemisphere(l.dd, h)
	return Longitude{dd}, err
}

func (l Longitude) Add(degrees float64) Longitude      { return Longitude{l.dd + degrees} }
func (l Longitude) Subtract(degrees float64) Longitude { return Longitude{l.dd - degrees} }
func (l Longitude) Multiply(factor float64) Longitude  { return Longitude{l.dd * factor} }
func (l Longitude) Divide(divisor float64) Longitude   { return Longitude{l.dd / divisor} }
func (l Longitude) Increment() Longitude               { return Longitude{l.dd + 1} }
func (l Longitude) Decrement() Longitude               { return Longitude{l.dd - 1} }
func (l Longitude) Negate() Longitude                  { return Longitude{-l.dd} }
func (l Longitude) Floor() Longitude                   { return Longitude{math.Floor(l.dd)} }
func (l Longitude) Ceiling() Longitude                 { return Longitude{math.Ceil(l.dd)} }

func (l Longitude) Round(decimals int) Longitude {
	return Longitude{roundTo(l.dd, decimals)}
}

func (l Longitude) RoundSeconds(interval float64) (Longitude, error) {
	dd, err := roundSeconds(l.dd, interval, longitudeKind.precision)
	return Longitude{dd}, err
}

func (l Longitude) Compare(o Longitude) int { return compareDegrees(l.dd, o.dd) }
func (l Longitude) Equal(o Longitude) bool  { return equalDegrees(l.dd, o.dd) }

func (l Longitude) EqualWithPrecision(o Longitude, decimals int) bool {
	return equalDegrees(roundTo(l.dd, decimals), roundTo(o.dd, decimals))
}

func (l Longitude) ToRadians() Radian  { return RadianFromDegrees(l.dd) }
func (l Longitude) Azimuth() Azimuth   { return Azimuth{l.dd} }
func (l Longitude) Latitude() Latitude { return Latitude{l.dd} }

func (l Longitude) String() string {
	s, _ := l.Format("", Invariant)
	return s
}

// Format renders the longitude, the default format is LongitudeFormat
func (l Longitude) Format(format string, c *Culture) (string, error) {
	return render(l.dd, format, c, longitudeKind)
}

func (l Longitude) MarshalText() ([]byte, error) {
	return []byte(formatG17(l.dd)), nil
}

func (l *Longitude) UnmarshalText(text []byte) (err error) {
	l.dd, err = parseG17(string(text))
	return
}

func (l Longitude) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(formatG17(l.dd), start)
}

func (l *Longitude) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	l.dd, err = decodeXMLDegrees(d, start)
	return
}
