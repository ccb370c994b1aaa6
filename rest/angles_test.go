package rest

import (
	"net/http"
	"net/url"
	"testing"

	"bitbucket.org/kleinnic74/geoangles/rest/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func angleURL(kind string, params ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		q.Set(params[i], params[i+1])
	}
	return "/angles/" + kind + "?" + q.Encode()
}

func TestGetLatitude(t *testing.T) {
	router := newRouter(NewAnglesHandler())
	rr := executeRequest(router, "GET", angleURL("latitude", "value", `39°12'09"S`), "")
	checkResponseCode(t, http.StatusOK, rr)

	var angle views.Angle
	decode(t, rr, &angle)
	assert.Equal(t, "latitude", angle.Kind)
	assert.Equal(t, `39°12'09.0000"S`, angle.Formatted)
	require.NotNil(t, angle.Degrees)
	assert.InDelta(t, -39.2025, *angle.Degrees, 1e-12)
	assert.Equal(t, "South", angle.Hemisphere)
	assert.Equal(t, -39, *angle.Hours)
	assert.Equal(t, 12, *angle.Minutes)
	assert.True(t, angle.Normalized)
}

func TestGetAzimuth(t *testing.T) {
	router := newRouter(NewAnglesHandler())
	data := []struct {
		URL       string
		Degrees   float64
		Formatted string
		Direction string
	}{
		{angleURL("azimuth", "value", "NE"), 45, "45.0000°", "NE"},
		{angleURL("azimuth", "value", "370", "op", "normalize"), 10, "10.0000°", "N"},
		{angleURL("azimuth", "value", "350", "op", "mirror"), 170, "170.0000°", "S"},
		{angleURL("azimuth", "value", "90", "format", "cc"), 90, "East", "E"},
		{angleURL("azimuth", "value", "45,5", "culture", "de-DE"), 45.5, "45,5000°", "NE"},
	}
	for _, d := range data {
		rr := executeRequest(router, "GET", d.URL, "")
		checkResponseCode(t, http.StatusOK, rr)
		var angle views.Angle
		decode(t, rr, &angle)
		require.NotNil(t, angle.Degrees, d.URL)
		assert.Equal(t, d.Degrees, *angle.Degrees, d.URL)
		assert.Equal(t, d.Formatted, angle.Formatted, d.URL)
		assert.Equal(t, d.Direction, angle.Direction, d.URL)
	}
}

func TestGetInvalidAngle(t *testing.T) {
	router := newRouter(NewAnglesHandler())
	rr := executeRequest(router, "GET", angleURL("latitude", "value", "NaN"), "")
	checkResponseCode(t, http.StatusOK, rr)
	var angle views.Angle
	decode(t, rr, &angle)
	assert.Nil(t, angle.Degrees)
	assert.Equal(t, "NaN", angle.Formatted)
}

func TestGetAngleErrors(t *testing.T) {
	router := newRouter(NewAnglesHandler())
	data := []struct {
		URL    string
		Status int
	}{
		{angleURL("longitude", "value", "abc"), http.StatusBadRequest},
		{angleURL("latitude", "value", "39.5 30"), http.StatusBadRequest},
		{angleURL("azimuth", "value", "45", "format", "HH.HH°MM.MM"), http.StatusBadRequest},
		{angleURL("azimuth", "value", "45", "op", "rotate"), http.StatusBadRequest},
		{angleURL("azimuth", "value", "45", "culture", "!!"), http.StatusBadRequest},
		{angleURL("planet", "value", "45"), http.StatusNotFound},
	}
	for _, d := range data {
		rr := executeRequest(router, "GET", d.URL, "")
		assert.Equal(t, d.Status, rr.Code, d.URL)
		var body map[string]string
		decode(t, rr, &body)
		assert.NotEmpty(t, body["error"], d.URL)
	}
}

func TestGetCompass(t *testing.T) {
	router := newRouter(NewAnglesHandler())
	rr := executeRequest(router, "GET", "/angles/azimuth/compass.svg?value=405", "")
	checkResponseCode(t, http.StatusOK, rr)
	assert.Equal(t, "image/svg+xml", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, "<svg")
	assert.Contains(t, body, "rotate(45.0000 120 120)")
	assert.Contains(t, body, "405.0000°")
	assert.Contains(t, body, ">NE<")

	rr = executeRequest(router, "GET", "/angles/azimuth/compass.svg?value=Infinity", "")
	checkResponseCode(t, http.StatusOK, rr)
	assert.NotContains(t, rr.Body.String(), "rotate(")

	rr = executeRequest(router, "GET", "/angles/azimuth/compass.svg?value=up", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
