package gps

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type position struct {
	XMLName xml.Name  `xml:"position"`
	Lat     Latitude  `xml:"lat"`
	Long    Longitude `xml:"long"`
	Heading Azimuth   `xml:"heading,attr"`
}

func TestMarshalText(t *testing.T) {
	text, err := NewLatitude(39.1).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "39.100000000000001", string(text))

	var lat Latitude
	require.NoError(t, lat.UnmarshalText(text))
	assert.Equal(t, 39.1, lat.DecimalDegrees())

	assert.Error(t, lat.UnmarshalText([]byte("39°")))
}

func TestXMLRoundTrip(t *testing.T) {
	p := position{Lat: NewLatitude(-39.5), Long: NewLongitude(122.25), Heading: NewAzimuth(270)}
	bin, err := xml.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `<position heading="270"><lat>-39.5</lat><long>122.25</long></position>`, string(bin))

	var back position
	require.NoError(t, xml.Unmarshal(bin, &back))
	assert.True(t, back.Lat.Equal(p.Lat))
	assert.True(t, back.Long.Equal(p.Long))
	assert.True(t, back.Heading.Equal(p.Heading))
}

func TestWriteAndReadXML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXML(&buf, "azimuth", NewAzimuth(45)))
	assert.Equal(t, "<azimuth>45</azimuth>", buf.String())

	dd, err := ReadXML(&buf)
	require.NoError(t, err)
	assert.Equal(t, 45.0, dd)

	dd, err = ReadXML(strings.NewReader("  -122.25 \n"))
	require.NoError(t, err)
	assert.Equal(t, -122.25, dd)

	dd, err = ReadXML(strings.NewReader(`<?xml version="1.0"?><lat> 12.5 </lat>`))
	require.NoError(t, err)
	assert.Equal(t, 12.5, dd)
}

func TestTextInJSON(t *testing.T) {
	bin, err := json.Marshal(map[string]Azimuth{"heading": NewAzimuth(22.5)})
	require.NoError(t, err)
	assert.Equal(t, `{"heading":"22.5"}`, string(bin))
}
