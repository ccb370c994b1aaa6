package csvio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestExportThenImport(t *testing.T) {
	de := gps.CultureFor(language.German)
	lighthouse := library.NewWaypoint("Lighthouse", gps.NewCoordinates(-39.2025, -122.5), gps.NewAzimuth(45.5))
	camp := library.NewWaypoint("Camp", gps.NewCoordinates(12.25, 10.5), gps.North)
	camp.Datum = 6807

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, []*library.Waypoint{lighthouse, camp}, de))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,latitude,longitude,heading,datum", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Lighthouse,"), lines[1])
	assert.True(t, strings.Contains(lines[1], "45,5000°"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], ",EPSG:6807"), lines[2])

	results, err := Import(&buf, de)
	require.NoError(t, err)
	require.Len(t, results, 2)
	for i, expected := range []*library.Waypoint{lighthouse, camp} {
		r := results[i]
		require.NoError(t, r.Err)
		assert.Equal(t, i+2, r.Row)
		assert.Equal(t, expected.Name, r.Waypoint.Name)
		assert.InDelta(t, expected.Position.Lat.DecimalDegrees(), r.Waypoint.Position.Lat.DecimalDegrees(), 1e-9)
		assert.InDelta(t, expected.Position.Long.DecimalDegrees(), r.Waypoint.Position.Long.DecimalDegrees(), 1e-9)
		assert.InDelta(t, expected.Heading.DecimalDegrees(), r.Waypoint.Heading.DecimalDegrees(), 1e-9)
		assert.Equal(t, expected.Datum, r.Waypoint.Datum)
	}
}

func TestImportReportsBadRows(t *testing.T) {
	in := strings.NewReader("name,latitude,longitude,heading,datum\n" +
		"Good,39.5 S,122.5 W,NE,\n" +
		"Bad,abc,0,,\n" +
		"Unknown,1,2,,Atlantis\n")
	results, err := Import(in, gps.Invariant)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NoError(t, results[0].Err)
	assert.Equal(t, -39.5, results[0].Waypoint.Position.Lat.DecimalDegrees())
	assert.Equal(t, 45.0, results[0].Waypoint.Heading.DecimalDegrees())

	assert.Equal(t, 3, results[1].Row)
	assert.True(t, errors.Is(results[1].Err, gps.ErrInvalidFormat))
	assert.Nil(t, results[1].Waypoint)
	assert.Error(t, results[2].Err)
}

func TestImportMalformed(t *testing.T) {
	_, err := Import(strings.NewReader("name,latitude\n\"unterminated,1\n"), gps.Invariant)
	assert.Error(t, err)
}
