package gps

import "math"

// Rect is a bounding box in degrees: min longitude, min latitude, max longitude, max latitude
type Rect [4]float64

// WorldBounds covers every normalized position
var WorldBounds = Rect{-180, -90, 180, 90}

func RectFrom(x0, y0, x1, y1 float64) Rect {
	return Rect([4]float64{math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1)})
}

// BoundsOf returns the smallest Rect containing all normalized positions,
// invalid positions are skipped. ok is false if no position is valid.
func BoundsOf(positions ...Coordinates) (r Rect, ok bool) {
	for _, c := range positions {
		if c.IsInvalid() || c.Lat.IsInfinity() || c.Long.IsInfinity() {
			continue
		}
		p := c.Normalize().Point()
		if !ok {
			r, ok = Rect{p[0], p[1], p[0], p[1]}, true
			continue
		}
		r = RectFrom(math.Min(r[0], p[0]), math.Min(r[1], p[1]), math.Max(r[2], p[0]), math.Max(r[3], p[1]))
	}
	return
}

func (r Rect) W() float64 {
	return r[2] - r[0]
}

func (r Rect) H() float64 {
	return r[3] - r[1]
}

func (r Rect) X0() float64 {
	return r[0]
}

func (r Rect) Y0() float64 {
	return r[1]
}

func (r Rect) X1() float64 {
	return r[2]
}

func (r Rect) Y1() float64 {
	return r[3]
}

func (r Rect) Center() Point {
	return Point{(r[0] + r[2]) / 2, (r[1] + r[3]) / 2}
}

// Grow extends the rect by margin degrees on every side, without leaving WorldBounds
func (r Rect) Grow(margin float64) Rect {
	return RectFrom(
		math.Max(r[0]-margin, WorldBounds[0]), math.Max(r[1]-margin, WorldBounds[1]),
		math.Min(r[2]+margin, WorldBounds[2]), math.Min(r[3]+margin, WorldBounds[3]))
}

// Contains includes the max edges so that positions on the antimeridian or a pole are inside WorldBounds
func (r Rect) Contains(p Point) bool {
	return p[0] >= r[0] && p[0] <= r[2] && p[1] >= r[1] && p[1] <= r[3]
}

func (r Rect) HalfSize() (float64, float64) {
	return r.W() / 2, r.H() / 2
}

func (r Rect) Intersects(o Rect) bool {
	return r[0] <= o[2] && o[0] <= r[2] && r[1] <= o[3] && o[1] <= r[3]
}

func (r Rect) FullyContains(o Rect) bool {
	return o[0] >= r[0] && o[2] <= r[2] && o[1] >= r[1] && o[3] <= r[3]
}

// Point is a position as x (longitude) and y (latitude)
type Point [2]float64

func PointFromLatLon(lat, lon float64) Point {
	return Point{lon, lat}
}

func (c Coordinates) Point() Point {
	return PointFromLatLon(c.Lat.DecimalDegrees(), c.Long.DecimalDegrees())
}

func (p Point) X() float64 {
	return p[0]
}

func (p Point) Y() float64 {
	return p[1]
}

func (p Point) In(r Rect) bool {
	return r.Contains(p)
}
