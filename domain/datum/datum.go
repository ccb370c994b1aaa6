// Package datum provides the catalog of geodetic datums. The catalog is built
// once when the package is initialized and is read-only afterwards.
package datum

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
)

var (
	ErrNilEllipsoid = errors.New("datum requires an ellipsoid")
	ErrUnknownDatum = errors.New("unknown datum")
)

// Datum is a geodetic reference frame: an ellipsoid and an optional prime
// meridian other than Greenwich
type Datum struct {
	name          string
	epsg          int
	ellipsoid     *Ellipsoid
	primeMeridian gps.Longitude
}

// New creates a datum whose prime meridian is Greenwich
func New(name string, epsg int, ellipsoid *Ellipsoid) (*Datum, error) {
	return NewWithPrimeMeridian(name, epsg, ellipsoid, gps.PrimeMeridian)
}

func NewWithPrimeMeridian(name string, epsg int, ellipsoid *Ellipsoid, primeMeridian gps.Longitude) (*Datum, error) {
	if ellipsoid == nil {
		return nil, ErrNilEllipsoid
	}
	return &Datum{name: name, epsg: epsg, ellipsoid: ellipsoid, primeMeridian: primeMeridian}, nil
}

func (d *Datum) Name() string                 { return d.name }
func (d *Datum) EPSGNumber() int              { return d.epsg }
func (d *Datum) Ellipsoid() *Ellipsoid        { return d.ellipsoid }
func (d *Datum) PrimeMeridian() gps.Longitude { return d.primeMeridian }

// Equal compares ellipsoid and prime meridian, two datums with different
// names can be equal.
func (d *Datum) Equal(o *Datum) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.ellipsoid.Equal(o.ellipsoid) && d.primeMeridian.Equal(o.primeMeridian)
}

func (d *Datum) String() string {
	return d.name
}

type catalog struct {
	all    []*Datum
	byName map[string]*Datum
	byEPSG map[int]*Datum
}

var registry = mustBuild([]definition{
	{"WGS 1984", 6326, WGS84Ellipsoid, 0},
	{"North American 1983", 6269, GRS80, 0},
	{"North American 1927", 6267, Clarke1866, 0},
	{"European Terrestrial Reference System 1989", 6258, GRS80, 0},
	{"European 1950", 6230, International1924, 0},
	{"Ordnance Survey of Great Britain 1936", 6277, Airy1830, 0},
	{"Geocentric Datum of Australia 1994", 6283, GRS80, 0},
	{"Tokyo", 6301, Bessel1841, 0},
	{"Pulkovo 1942", 6284, Krassowsky1940, 0},
	{"CH1903", 6149, Bessel1841, 0},
	{"Deutsches Hauptdreiecksnetz", 6314, Bessel1841, 0},
	{"New Zealand Geodetic Datum 2000", 6167, GRS80, 0},
	{"South American 1969", 6618, GRS1967Modified, 0},
	{"Amersfoort", 6289, Bessel1841, 0},
	{"Reseau Geodesique Francais 1993", 6171, GRS80, 0},
	{"Nouvelle Triangulation Francaise (Paris)", 6807, Clarke1880IGN, 2.33722917},
})

var WGS84 = registry.byEPSG[6326]

type definition struct {
	name          string
	epsg          int
	ellipsoid     *Ellipsoid
	primeMeridian float64
}

func mustBuild(defs []definition) catalog {
	c := catalog{
		byName: make(map[string]*Datum, len(defs)),
		byEPSG: make(map[int]*Datum, len(defs)),
	}
	for _, def := range defs {
		d, err := NewWithPrimeMeridian(def.name, def.epsg, def.ellipsoid, gps.NewLongitude(def.primeMeridian))
		if err != nil {
			panic(err)
		}
		c.all = append(c.all, d)
		c.byName[strings.ToLower(d.name)] = d
		c.byEPSG[d.epsg] = d
	}
	sort.Slice(c.all, func(i, j int) bool { return c.all[i].epsg < c.all[j].epsg })
	return c
}

// FromName looks up a datum by its name, ignoring case
func FromName(name string) (*Datum, bool) {
	d, found := registry.byName[strings.ToLower(strings.TrimSpace(name))]
	return d, found
}

// FromEPSGNumber looks up a datum by its EPSG code
func FromEPSGNumber(epsg int) (*Datum, bool) {
	d, found := registry.byEPSG[epsg]
	return d, found
}

// All returns the datums of the catalog ordered by EPSG number
func All() []*Datum {
	out := make([]*Datum, len(registry.all))
	copy(out, registry.all)
	return out
}

// Parse resolves "EPSG:6326", "6326" or a datum name, an empty string is WGS 84
func Parse(s string) (*Datum, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WGS84, nil
	}
	if epsg, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(s), "EPSG:")); err == nil {
		if d, found := FromEPSGNumber(epsg); found {
			return d, nil
		}
	} else if d, found := FromName(s); found {
		return d, nil
	}
	return nil, &gps.FormatError{Input: s, Err: ErrUnknownDatum}
}
