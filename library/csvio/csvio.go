// Package csvio reads and writes waypoints as CSV. Angles are written as text
// in a culture so that files stay readable in spreadsheets of that locale.
package csvio

import (
	"fmt"
	"io"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"bitbucket.org/kleinnic74/geoangles/library"
	"github.com/gocarina/gocsv"
)

// Row is one waypoint in a CSV file
type Row struct {
	Name      string `csv:"name"`
	Latitude  string `csv:"latitude"`
	Longitude string `csv:"longitude"`
	Heading   string `csv:"heading"`
	Datum     string `csv:"datum"`
}

// Result is the outcome of reading one row, either Waypoint or Err is set
type Result struct {
	Row      int
	Waypoint *library.Waypoint
	Err      error
}

func rowOf(w *library.Waypoint, c *gps.Culture) (row Row, err error) {
	row.Name = w.Name
	if row.Latitude, err = w.Position.Lat.Format("", c); err != nil {
		return
	}
	if row.Longitude, err = w.Position.Long.Format("", c); err != nil {
		return
	}
	if row.Heading, err = w.Heading.Format("", c); err != nil {
		return
	}
	row.Datum = fmt.Sprintf("EPSG:%d", w.DatumOf().EPSGNumber())
	return
}

// Export writes a header line and one line per waypoint
func Export(out io.Writer, waypoints []*library.Waypoint, c *gps.Culture) error {
	rows := make([]Row, 0, len(waypoints))
	for _, w := range waypoints {
		row, err := rowOf(w, c)
		if err != nil {
			return fmt.Errorf("waypoint '%s': %w", w.Name, err)
		}
		rows = append(rows, row)
	}
	return gocsv.Marshal(rows, out)
}

// Import reads all rows of in. A row that cannot be parsed is reported in its
// Result, only a malformed file fails as a whole. Rows are numbered as lines
// of the file, the header being line 1.
func Import(in io.Reader, c *gps.Culture) ([]Result, error) {
	var rows []Row
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, err
	}
	results := make([]Result, len(rows))
	for i, row := range rows {
		results[i].Row = i + 2
		results[i].Waypoint, results[i].Err = library.ParseWaypoint(row.Name, row.Latitude+";"+row.Longitude, row.Heading, row.Datum, c)
	}
	return results, nil
}
