package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppCreatesDataStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	a, err := NewApp(context.Background(), Options{DataDir: dir, Port: 0})
	require.NoError(t, err)
	defer a.Close(context.Background())

	_, err = os.Stat(filepath.Join(dir, dbName))
	assert.NoError(t, err)
	assert.Nil(t, a.peers)
}

func TestAppServesAngles(t *testing.T) {
	a, err := NewApp(context.Background(), Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	defer a.Close(context.Background())

	data := []struct {
		url      string
		status   int
		contains string
	}{
		{"/angles/latitude?value=39.5S", http.StatusOK, `39°30'00.0000\"S`},
		{"/angles/azimuth?value=NE&format=cc", http.StatusOK, "Northeast"},
		{"/datums/epsg/4326", http.StatusNotFound, ""},
		{"/datums/epsg/6326", http.StatusOK, "WGS 1984"},
		{"/metrics", http.StatusOK, "angles_requests_total"},
		{"/peers", http.StatusNotFound, ""},
		{"/waypoints", http.StatusOK, `"data":[]`},
		{"/waypoints/within?bbox=-10,-10,10,10", http.StatusOK, `"data":[]`},
		{"/waypoints/map.svg", http.StatusOK, "<svg"},
		{"/waypoints/export.csv", http.StatusOK, ""},
	}
	for _, d := range data {
		req, _ := http.NewRequest(http.MethodGet, d.url, nil)
		rr := httptest.NewRecorder()
		a.Handler().ServeHTTP(rr, req)
		assert.Equal(t, d.status, rr.Code, d.url)
		assert.True(t, strings.Contains(rr.Body.String(), d.contains), "%s: %s", d.url, rr.Body.String())
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"), d.url)
	}
}

func TestWaypointsAPICanBeDisabled(t *testing.T) {
	waypointsAPI.Disable()
	defer waypointsAPI.Enable()

	a, err := NewApp(context.Background(), Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	defer a.Close(context.Background())

	req, _ := http.NewRequest(http.MethodGet, "/waypoints", nil)
	rr := httptest.NewRecorder()
	a.Handler().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestShutdownHandlersRunInReverse(t *testing.T) {
	var order []int
	var hdls shutdownHandlers
	for i := 0; i < 3; i++ {
		i := i
		hdls.Add(func(context.Context, *App) { order = append(order, i) })
	}
	hdls.Execute(context.Background(), nil)
	assert.Equal(t, []int{2, 1, 0}, order)
}

func TestDefaultInstanceProperties(t *testing.T) {
	assert.Len(t, DefaultInstanceProperties(), 3)
}
