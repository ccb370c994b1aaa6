package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kleinnic74/fflags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsFromEnvironment(t *testing.T) {
	t.Setenv("GEOANGLES_DATADIR", "/var/lib/geoangles")
	t.Setenv("GEOANGLES_PORT", "9090")
	t.Setenv("GEOANGLES_ANNOUNCE", "true")
	o := defaults()
	assert.Equal(t, "/var/lib/geoangles", o.DataDir)
	assert.Equal(t, uint(9090), o.Port)
	assert.True(t, o.Announce)
}

func TestDefaultsWithoutEnvironment(t *testing.T) {
	t.Setenv("GEOANGLES_DATADIR", "")
	t.Setenv("GEOANGLES_PORT", "not a port")
	t.Setenv("GEOANGLES_ANNOUNCE", "")
	o := defaults()
	assert.Equal(t, "geoangles", o.DataDir)
	assert.Equal(t, uint(8080), o.Port)
	assert.False(t, o.Announce)
}

func TestLoadFeatures(t *testing.T) {
	waypoints := fflags.Define("rest.waypoints")
	defer waypoints.Enable()

	assert.True(t, fflags.IsEnabled(waypoints))
	loadFeatures("")
	assert.True(t, fflags.IsEnabled(waypoints))

	path := filepath.Join(t.TempDir(), "features.yaml")
	require.NoError(t, os.WriteFile(path, []byte("features:\n  rest:\n    waypoints: false\n"), 0600))
	loadFeatures(path)
	assert.False(t, fflags.IsEnabled(waypoints))
}
