package datum

import "math"

// Ellipsoid is a reference ellipsoid approximating the shape of the earth
type Ellipsoid struct {
	Name              string  `json:"name"`
	EPSG              int     `json:"epsg"`
	EquatorialRadius  float64 `json:"a"`
	InverseFlattening float64 `json:"rf"`
}

var (
	WGS84Ellipsoid    = &Ellipsoid{Name: "WGS 84", EPSG: 7030, EquatorialRadius: 6378137, InverseFlattening: 298.257223563}
	GRS80             = &Ellipsoid{Name: "GRS 1980", EPSG: 7019, EquatorialRadius: 6378137, InverseFlattening: 298.257222101}
	Clarke1866        = &Ellipsoid{Name: "Clarke 1866", EPSG: 7008, EquatorialRadius: 6378206.4, InverseFlattening: 294.978698214}
	Clarke1880IGN     = &Ellipsoid{Name: "Clarke 1880 (IGN)", EPSG: 7011, EquatorialRadius: 6378249.2, InverseFlattening: 293.466021294}
	International1924 = &Ellipsoid{Name: "International 1924", EPSG: 7022, EquatorialRadius: 6378388, InverseFlattening: 297}
	Airy1830          = &Ellipsoid{Name: "Airy 1830", EPSG: 7001, EquatorialRadius: 6377563.396, InverseFlattening: 299.3249646}
	Bessel1841        = &Ellipsoid{Name: "Bessel 1841", EPSG: 7004, EquatorialRadius: 6377397.155, InverseFlattening: 299.1528128}
	Krassowsky1940    = &Ellipsoid{Name: "Krassowsky 1940", EPSG: 7024, EquatorialRadius: 6378245, InverseFlattening: 298.3}
	GRS1967Modified   = &Ellipsoid{Name: "GRS 1967 Modified", EPSG: 7050, EquatorialRadius: 6378160, InverseFlattening: 298.25}
)

// Flattening is (a-b)/a
func (e *Ellipsoid) Flattening() float64 {
	return 1 / e.InverseFlattening
}

// PolarRadius is the semi-minor axis in meters
func (e *Ellipsoid) PolarRadius() float64 {
	return e.EquatorialRadius * (1 - e.Flattening())
}

// Eccentricity is the first eccentricity of the ellipsoid
func (e *Ellipsoid) Eccentricity() float64 {
	f := e.Flattening()
	return math.Sqrt(2*f - f*f)
}

// Equal compares the shape, names and codes are ignored
func (e *Ellipsoid) Equal(o *Ellipsoid) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.EquatorialRadius == o.EquatorialRadius && e.InverseFlattening == o.InverseFlattening
}
