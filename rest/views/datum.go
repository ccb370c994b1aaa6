package views

import (
	"bitbucket.org/kleinnic74/geoangles/domain/datum"
)

type Datum struct {
	Name          string           `json:"name"`
	EPSG          int              `json:"epsg"`
	Ellipsoid     *datum.Ellipsoid `json:"ellipsoid"`
	PrimeMeridian float64          `json:"primeMeridian"`
	Links         Links            `json:"links"`
}

var datumLinks = LinkProvider{
	patterns: map[string]string{
		"self": "/datums/epsg/%d",
	},
}

func DatumFrom(d *datum.Datum) Datum {
	return Datum{
		Name:          d.Name(),
		EPSG:          d.EPSGNumber(),
		Ellipsoid:     d.Ellipsoid(),
		PrimeMeridian: d.PrimeMeridian().DecimalDegrees(),
		Links:         datumLinks.LinksFor(d.EPSGNumber()),
	}
}
