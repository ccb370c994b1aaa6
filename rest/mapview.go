package rest

import (
	"fmt"
	"io"
	"math"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
	svg "github.com/ajstarks/svgo"
)

var (
	strokeGrid     = []string{`stroke="gray"`, `stroke-width="0.2px"`, `fill="none"`}
	strokeWaypoint = []string{`stroke="blue"`, `stroke-width="0.2px"`, `fill="blue"`}
	strokeHeading  = []string{`stroke="red"`, `stroke-width="0.2px"`}
	strokeQuad     = []string{`stroke="green"`, `stroke-width="0.2px"`}
)

// GeoView plots waypoints on an equirectangular grid, north up
type GeoView struct {
	canvas *svg.SVG
	marker float64
}

func viewBoundsOf(waypoints []*library.Waypoint) gps.Rect {
	positions := make([]gps.Coordinates, len(waypoints))
	for i, w := range waypoints {
		positions[i] = w.Position
	}
	bounds, ok := gps.BoundsOf(positions...)
	if !ok {
		return gps.WorldBounds
	}
	return bounds.Grow(math.Max(1, math.Max(bounds.W(), bounds.H())*0.1))
}

func NewGeoView(out io.Writer, bounds gps.Rect) *GeoView {
	canvas := svg.New(out)
	canvas.Startpercent(100, 100, fmt.Sprintf(`viewBox="%f %f %f %f"`, bounds.X0(), -bounds.Y1(), bounds.W(), bounds.H()))
	canvas.Gtransform("scale(1,-1)")
	canvas.Path("M 0 -90 l 0 180", strokeGrid...)
	canvas.Path("M -180 0 l 360 0", strokeGrid...)
	canvas.Path("M -180 -90 L -180 90 L 180 90 L 180 -90 Z", strokeGrid...)
	return &GeoView{
		canvas: canvas,
		marker: math.Max(bounds.W(), bounds.H()) / 100,
	}
}

func markerPath(p gps.Point, r float64) string {
	return fmt.Sprintf("M %f %f m %f 0 a %f %f 0 1 0 %f 0 a %f %f 0 1 0 %f 0", p.X(), p.Y(), -r, r, r, 2*r, r, r, -2*r)
}

func headingPath(p gps.Point, heading gps.Azimuth, length float64) string {
	rad := float64(heading.ToRadians())
	return fmt.Sprintf("M %f %f l %f %f", p.X(), p.Y(), length*math.Sin(rad), length*math.Cos(rad))
}

func (g *GeoView) Waypoint(w *library.Waypoint) {
	p := w.Position.Point()
	g.canvas.Group()
	g.canvas.Title(w.Name)
	g.canvas.Path(markerPath(p, g.marker), strokeWaypoint...)
	g.canvas.Path(headingPath(p, w.Heading, g.marker*4), strokeHeading...)
	g.canvas.Gend()
}

func (g *GeoView) Close() error {
	g.canvas.Gend()
	g.canvas.End()
	return nil
}

func xlinePath(bounds gps.Rect) string {
	center := bounds.Center()
	return fmt.Sprintf("M %f %f l %f %f", bounds.X0(), center.Y(), bounds.W(), 0.)
}

func ylinePath(bounds gps.Rect) string {
	center := bounds.Center()
	return fmt.Sprintf("M %f %f l %f %f", center.X(), bounds.Y0(), 0., bounds.H())
}

// indexView draws the cells of a spatial index and the positions in them
type indexView struct {
	out  io.Writer
	view *GeoView
}

func (v *indexView) Begin(bounds gps.Rect) {
	v.view = NewGeoView(v.out, bounds)
}

func (v *indexView) Level(depth int, bounds gps.Rect) {
	v.view.canvas.Group()
	v.view.canvas.Path(xlinePath(bounds), strokeQuad...)
	v.view.canvas.Path(ylinePath(bounds), strokeQuad...)
	v.view.canvas.Gend()
}

func (v *indexView) Object(p gps.Point) {
	v.view.canvas.Path(markerPath(p, v.view.marker), strokeWaypoint...)
}

func (v *indexView) End() {
	v.view.Close()
}
