package rest

import (
	"fmt"
	"io"
	"math"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	svg "github.com/ajstarks/svgo"
)

const (
	compassSize   = 240
	compassCenter = compassSize / 2
	compassRadius = 100
)

var (
	strokeRose   = []string{`stroke="gray"`, `stroke-width="1px"`, `fill="none"`}
	strokeTick   = []string{`stroke="black"`, `stroke-width="1px"`}
	strokeNeedle = []string{`fill="red"`, `stroke="darkred"`, `stroke-width="1px"`}
	textLabel    = []string{`text-anchor="middle"`, `font-family="sans-serif"`, `font-size="10px"`}
)

// DrawCompass renders a compass rose with a needle pointing to the normalized
// azimuth. The needle is omitted for invalid and infinite azimuths.
func DrawCompass(out io.Writer, a gps.Azimuth, c *gps.Culture) {
	canvas := svg.New(out)
	canvas.Start(compassSize, compassSize, `viewBox="0 0 240 240"`)
	canvas.Circle(compassCenter, compassCenter, compassRadius, strokeRose...)
	for d := gps.N; d <= gps.NNW; d++ {
		length := 6
		if d%4 == 0 {
			length = 12
		}
		x0, y0 := polar(d.Azimuth().DecimalDegrees(), compassRadius)
		x1, y1 := polar(d.Azimuth().DecimalDegrees(), compassRadius-length)
		canvas.Line(x0, y0, x1, y1, strokeTick...)
		if d%2 == 0 {
			lx, ly := polar(d.Azimuth().DecimalDegrees(), compassRadius+12)
			canvas.Text(lx, ly+4, d.Code(), textLabel...)
		}
	}
	if !a.IsInvalid() && !a.IsInfinity() {
		canvas.Gtransform(fmt.Sprintf("rotate(%.4f %d %d)", a.Normalize().DecimalDegrees(), compassCenter, compassCenter))
		canvas.Polygon(
			[]int{compassCenter, compassCenter + 6, compassCenter - 6},
			[]int{compassCenter - compassRadius + 16, compassCenter, compassCenter},
			strokeNeedle...)
		canvas.Gend()
	}
	label, err := a.Format("", c)
	if err != nil {
		label = a.String()
	}
	canvas.Text(compassCenter, compassCenter+compassRadius/2, label, textLabel...)
	canvas.End()
}

// polar returns the canvas position at distance r from the center in the
// direction of the azimuth, north being up
func polar(azimuth float64, r int) (int, int) {
	rad := float64(gps.RadianFromDegrees(azimuth))
	x := float64(compassCenter) + float64(r)*math.Sin(rad)
	y := float64(compassCenter) - float64(r)*math.Cos(rad)
	return int(math.Round(x)), int(math.Round(y))
}
