// angles parses, converts and formats angles from the command line
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bitbucket.org/kleinnic74/geoangles/domain/formats"
	"bitbucket.org/kleinnic74/geoangles/domain/gps"
)

type tagSet map[string]bool

func (tags tagSet) Set(value string) error {
	tags[value] = true
	return nil
}

func (tags tagSet) String() string {
	if tags == nil {
		return ""
	}
	var b strings.Builder
	var sep string
	for k := range tags {
		b.WriteString(sep)
		b.WriteString(k)
		sep = ","
	}
	return b.String()
}

func (tags tagSet) Contains(tag string) bool {
	_, found := tags[tag]
	return found
}

type converter func(value string, c *gps.Culture) (gps.Angle, error)

var (
	tags        = make(tagSet)
	kind        string
	format      string
	cultureName string
	normalize   bool
	mirror      bool
	exifMode    bool

	converters = map[string]converter{
		"azimuth": func(s string, c *gps.Culture) (gps.Angle, error) {
			a, err := gps.ParseAzimuth(s, c)
			if normalize {
				a = a.Normalize()
			}
			if mirror {
				a = a.Mirror()
			}
			return a, err
		},
		"latitude": func(s string, c *gps.Culture) (gps.Angle, error) {
			a, err := gps.ParseLatitude(s, c)
			if normalize {
				a = a.Normalize()
			}
			if mirror {
				a = a.Mirror()
			}
			return a, err
		},
		"longitude": func(s string, c *gps.Culture) (gps.Angle, error) {
			a, err := gps.ParseLongitude(s, c)
			if normalize {
				a = a.Normalize()
			}
			if mirror {
				a = a.Mirror()
			}
			return a, err
		},
	}
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <value>...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -x [-t tag]... <image or directory>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&kind, "k", "azimuth", "Kind of angle: azimuth, latitude or longitude")
	flag.StringVar(&format, "f", "", "Format pattern of the output")
	flag.StringVar(&cultureName, "c", "", "Culture of input and output, defaults to the process locale")
	flag.BoolVar(&normalize, "n", false, "Normalize the angle")
	flag.BoolVar(&mirror, "m", false, "Mirror the angle")
	flag.BoolVar(&exifMode, "x", false, "Print the GPS location of images")
	flag.Var(tags, "t", "EXIF tags to print along with the location")
}

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	culture := gps.CurrentCulture()
	if cultureName != "" {
		var err error
		if culture, err = gps.ParseCulture(cultureName); err != nil {
			fmt.Fprintf(os.Stderr, "Unknown culture %q: %s\n", cultureName, err)
			os.Exit(1)
		}
	}
	if exifMode {
		if err := walk(flag.Arg(0), printLocation(culture)); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		return
	}
	convert, found := converters[strings.ToLower(kind)]
	if !found {
		fmt.Fprintf(os.Stderr, "Unknown kind of angle: %s\n", kind)
		os.Exit(1)
	}
	failed := false
	for _, v := range flag.Args() {
		a, err := convert(v, culture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", v, err)
			failed = true
			continue
		}
		s, err := a.Format(format, culture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", v, err)
			failed = true
			continue
		}
		fmt.Println(s)
	}
	if failed {
		os.Exit(2)
	}
}

type action func(path string) error

func walk(path string, a action) error {
	s, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("Cannot access %s: %w", path, err)
	}
	if !s.IsDir() {
		return a(path)
	}
	return filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		return a(path)
	})
}

func printLocation(c *gps.Culture) action {
	return func(path string) error {
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		pos, err := formats.DecodeLocation(in)
		switch err {
		case nil:
			s, err := pos.Format(format, format, c)
			if err != nil {
				return err
			}
			fmt.Printf("%s: Location=%s (%s)\n", path, s, pos.ISO6709())
		case formats.ErrNotAnImage:
			return nil
		case formats.ErrNoLocation:
			fmt.Printf("%s: no location\n", path)
		default:
			fmt.Fprintf(os.Stderr, "%s: %s\n", path, err)
		}
		if len(tags) > 0 {
			formats.PrintExif(path, func(name, value string) {
				if tags.Contains(name) {
					fmt.Printf("%s: %s=%s\n", path, name, value)
				}
			})
		}
		return nil
	}
}
