package gps

import (
	"encoding/xml"
	"math"
)

// Azimuth is a horizontal direction in degrees, measured clockwise from north
type Azimuth struct {
	dd float64
}

var (
	North          = Azimuth{0}
	NorthNortheast = Azimuth{22.5}
	Northeast      = Azimuth{45}
	EastNortheast  = Azimuth{67.5}
	East           = Azimuth{90}
	EastSoutheast  = Azimuth{112.5}
	Southeast      = Azimuth{135}
	SouthSoutheast = Azimuth{157.5}
	South          = Azimuth{180}
	SouthSouthwest = Azimuth{202.5}
	Southwest      = Azimuth{225}
	WestSouthwest  = Azimuth{247.5}
	West           = Azimuth{270}
	WestNorthwest  = Azimuth{292.5}
	Northwest      = Azimuth{315}
	NorthNorthwest = Azimuth{337.5}

	MinimumAzimuth  = Azimuth{0}
	MaximumAzimuth  = Azimuth{360}
	InvalidAzimuth  = Azimuth{math.NaN()}
	InfiniteAzimuth = Azimuth{math.Inf(1)}
)

func NewAzimuth(dd float64) Azimuth {
	return Azimuth{dd}
}

func NewAzimuthDMS(hours, minutes int, seconds float64) Azimuth {
	return Azimuth{ToDecimalDegrees(hours, minutes, seconds)}
}

func NewAzimuthDM(hours int, decimalMinutes float64) Azimuth {
	return Azimuth{ToDecimalDegreesDM(hours, decimalMinutes)}
}

// ParseAzimuth reads a bearing in degrees ("123.5", "123°30'") or a compass
// point such as "NE", "North-Northwest" or "north east".
func ParseAzimuth(s string, c *Culture) (Azimuth, error) {
	dd, err := parseDegrees(s, c, azimuthKind)
	return Azimuth{dd}, err
}

func AzimuthFromRadians(r Radian) Azimuth {
	return Azimuth{r.Degrees()}
}

func (a Azimuth) DecimalDegrees() float64 { return a.dd }

func (a Azimuth) Hours() int {
	return decompose(a.dd, azimuthKind.precision).hours
}

func (a Azimuth) Minutes() int {
	return decompose(a.dd, azimuthKind.precision).minutes
}

func (a Azimuth) Seconds() float64 {
	return decompose(a.dd, azimuthKind.precision).seconds
}

func (a Azimuth) DecimalMinutes() float64 {
	return decompose(a.dd, azimuthKind.precision).decimalMinutes
}

// Direction classifies the azimuth into one of 16 compass sectors of 22.5°
func (a Azimuth) Direction() Direction {
	return directionOf(a.dd)
}

func (a Azimuth) IsNormalized() bool { return a.dd >= 0 && a.dd < 360 }
func (a Azimuth) IsInvalid() bool    { return math.IsNaN(a.dd) }
func (a Azimuth) IsInfinity() bool   { return math.IsInf(a.dd, 0) }
func (a Azimuth) IsEmpty() bool      { return a.dd == 0 }

// Normalize wraps the azimuth into [0, 360)
func (a Azimuth) Normalize() Azimuth {
	return Azimuth{normalizeAzimuth(a.dd)}
}

// Mirror returns the opposite direction, 180° away
func (a Azimuth) Mirror() Azimuth {
	return Azimuth{normalizeAzimuth(a.dd + 180)}
}

func (a Azimuth) Add(degrees float64) Azimuth      { return Azimuth{a.dd + degrees} }
func (a Azimuth) Subtract(degrees float64) Azimuth { return Azimuth{a.dd - degrees} }
func (a Azimuth) Multiply(factor float64) Azimuth  { return Azimuth{a.dd * factor} }
func (a Azimuth) Divide(divisor float64) Azimuth   { return Azimuth{a.dd / divisor} }
func (a Azimuth) Increment() Azimuth               { return Azimuth{a.dd + 1} }
func (a Azimuth) Decrement() Azimuth               { return Azimuth{a.dd - 1} }
func (a Azimuth) Floor() Azimuth                   { return Azimuth{math.Floor(a.dd)} }
func (a Azimuth) Ceiling() Azimuth                 { return Azimuth{math.Ceil(a.dd)} }

func (a Azimuth) Round(decimals int) Azimuth {
	return Azimuth{roundTo(a.dd, decimals)}
}

func (a Azimuth) RoundSeconds(interval float64) (Azimuth, error) {
	dd, err := roundSeconds(a.dd, interval, azimuthKind.precision)
	return Azimuth{dd}, err
}

func (a Azimuth) Compare(o Azimuth) int { return compareDegrees(a.dd, o.dd) }
func (a Azimuth) Equal(o Azimuth) bool  { return equalDegrees(a.dd, o.dd) }

func (a Azimuth) EqualWithPrecision(o Azimuth, decimals int) bool {
	return equalDegrees(roundTo(a.dd, decimals), roundTo(o.dd, decimals))
}

func (a Azimuth) ToRadians() Radian    { return RadianFromDegrees(a.dd) }
func (a Azimuth) Latitude() Latitude   { return Latitude{a.dd} }
func (a Azimuth) Longitude() Longitude { return Longitude{a.dd} }

// String renders decimal degrees with four decimals, use CompassName for the direction
func (a Azimuth) String() string {
	s, _ := a.Format(AzimuthDecimalFormat, Invariant)
	return s
}

// CompassName returns the full name of the compass sector, e.g. "Northeast"
func (a Azimuth) CompassName() string {
	s, _ := a.Format(AzimuthCompassFormat, Invariant)
	return s
}

// Format renders the azimuth. The empty, "g" and "G" formats give
// AzimuthDecimalFormat; "c" and "cc" give the compass code or name.
func (a Azimuth) Format(format string, c *Culture) (string, error) {
	return render(a.dd, format, c, azimuthKind)
}

func (a Azimuth) MarshalText() ([]byte, error) {
	return []byte(formatG17(a.dd)), nil
}

func (a *Azimuth) UnmarshalText(text []byte) (err error) {
	a.dd, err = parseG17(string(text))
	return
}

func (a Azimuth) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(formatG17(a.dd), start)
}

func (a *Azimuth) UnmarshalXML(d *xml.Decoder, start xml.StartElement) (err error) {
	a.dd, err = decodeXMLDegrees(d, start)
	return
}
