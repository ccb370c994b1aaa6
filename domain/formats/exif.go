package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"bitbucket.org/kleinnic74/geoangles/domain/gps"
	"github.com/h2non/filetype"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
)

var (
	ErrNotAnImage = errors.New("not an image")
	ErrNoLocation = errors.New("no GPS location in image")
)

type TagHandler func(name, value string)

type exifWalker struct {
	w TagHandler
}

func (w *exifWalker) Walk(name exif.FieldName, tag *tiff.Tag) error {
	w.w(string(name), tag.String())
	return nil
}

// PrintExif passes every EXIF tag of the image at path to walker
func PrintExif(path string, walker TagHandler) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	meta, err := exif.Decode(f)
	if err != nil {
		return err
	}
	return meta.Walk(&exifWalker{w: walker})
}

// DecodeLocation reads the GPS position stored in the EXIF data of an image.
// Calling this function will consume the reader.
func DecodeLocation(r io.Reader) (gps.Coordinates, error) {
	header := make([]byte, 262)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return gps.Coordinates{}, err
	}
	header = header[:n]
	if !filetype.IsImage(header) {
		return gps.Coordinates{}, ErrNotAnImage
	}
	meta, err := exif.Decode(io.MultiReader(bytes.NewReader(header), r))
	if err != nil {
		return gps.Coordinates{}, err
	}
	lat, err := exifAngle(meta, exif.GPSLatitude, exif.GPSLatitudeRef)
	if err != nil {
		return gps.Coordinates{}, err
	}
	long, err := exifAngle(meta, exif.GPSLongitude, exif.GPSLongitudeRef)
	if err != nil {
		return gps.Coordinates{}, err
	}
	return gps.Coordinates{
		Lat:  gps.NewLatitude(lat),
		Long: gps.NewLongitude(long),
	}, nil
}

func exifAngle(meta *exif.Exif, value, ref exif.FieldName) (float64, error) {
	tag, err := meta.Get(value)
	if err != nil {
		if exif.IsTagNotPresentError(err) {
			return 0, ErrNoLocation
		}
		return 0, err
	}
	if tag.Count != 3 {
		return 0, fmt.Errorf("%s: expected 3 rationals, got %d", value, tag.Count)
	}
	var parts [3][2]int64
	for i := range parts {
		if parts[i][0], parts[i][1], err = tag.Rat2(i); err != nil {
			return 0, err
		}
	}
	hemisphere := gps.HemisphereNone
	if refTag, err := meta.Get(ref); err == nil {
		if s, err := refTag.StringVal(); err == nil {
			hemisphere, _ = gps.ParseHemisphere(s)
		}
	}
	return rationalDegrees(parts, hemisphere)
}

// rationalDegrees converts the degrees, minutes and seconds rationals of an
// EXIF GPS tag. Cameras write fractional minutes as e.g. 1230/100 with zero
// seconds.
func rationalDegrees(parts [3][2]int64, h gps.Hemisphere) (float64, error) {
	var values [3]float64
	for i, r := range parts {
		if r[1] == 0 {
			return 0, fmt.Errorf("invalid rational %d/%d", r[0], r[1])
		}
		values[i] = float64(r[0]) / float64(r[1])
	}
	if parts[0][0]%parts[0][1] != 0 {
		// fractional degrees, minutes and seconds are only offsets
		dd := values[0] + values[1]/60 + values[2]/3600
		if h == gps.HemisphereSouth || h == gps.HemisphereWest {
			dd = -dd
		}
		return dd, nil
	}
	degrees := int(values[0])
	if parts[1][0]%parts[1][1] != 0 {
		return gps.ToDecimalDegreesDMHemisphere(degrees, values[1]+values[2]/60, h), nil
	}
	return gps.ToDecimalDegreesHemisphere(degrees, int(values[1]), values[2], h), nil
}
