package rest

import (
	"net/http"
	"testing"

	"bitbucket.org/kleinnic74/geoangles/domain/datum"
	"bitbucket.org/kleinnic74/geoangles/rest/views"
	"github.com/stretchr/testify/assert"
)

func TestGetDatums(t *testing.T) {
	router := newRouter(NewDatumsHandler())
	rr := executeRequest(router, "GET", "/datums", "")
	checkResponseCode(t, http.StatusOK, rr)
	var page struct {
		Data []views.Datum `json:"data"`
	}
	decode(t, rr, &page)
	assert.Len(t, page.Data, len(datum.All()))
	assert.Equal(t, "/datums/epsg/6149", page.Data[0].Links["self"])
}

func TestGetDatum(t *testing.T) {
	router := newRouter(NewDatumsHandler())

	rr := executeRequest(router, "GET", "/datums/epsg/6326", "")
	checkResponseCode(t, http.StatusOK, rr)
	var d views.Datum
	decode(t, rr, &d)
	assert.Equal(t, "WGS 1984", d.Name)
	assert.Equal(t, 6378137.0, d.Ellipsoid.EquatorialRadius)

	rr = executeRequest(router, "GET", "/datums/name/tokyo", "")
	checkResponseCode(t, http.StatusOK, rr)
	decode(t, rr, &d)
	assert.Equal(t, 6301, d.EPSG)

	rr = executeRequest(router, "GET", "/datums/name/Nouvelle%20Triangulation%20Francaise%20(Paris)", "")
	checkResponseCode(t, http.StatusOK, rr)
	decode(t, rr, &d)
	assert.Equal(t, 2.33722917, d.PrimeMeridian)

	assert.Equal(t, http.StatusNotFound, executeRequest(router, "GET", "/datums/epsg/1", "").Code)
	assert.Equal(t, http.StatusNotFound, executeRequest(router, "GET", "/datums/name/atlantis", "").Code)
	assert.Equal(t, http.StatusNotFound, executeRequest(router, "GET", "/datums/epsg/abc", "").Code)
}
