package gps

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Default format strings. D and H both stand for degrees.
const (
	AzimuthDecimalFormat = "d.dddd°"
	AzimuthCompassFormat = "cc"
	LatitudeFormat       = `HH°MM'SS.SSSS"i`
	LongitudeFormat      = `HHH°MM'SS.SSSS"i`
)

// segment is either literal text or a run of one repeated format token
type segment struct {
	token      rune
	literal    string
	length     int
	intDigits  int
	fracDigits int
	fractional bool
}

// render formats decimal degrees according to a format string made of
// H/D (degrees), M (minutes), S (seconds), C (compass, azimuths only) and
// I (hemisphere, latitudes and longitudes only) runs. Everything else is
// copied literally.
func render(dd float64, format string, c *Culture, k kind) (string, error) {
	c = cultureOrCurrent(c)
	switch {
	case math.IsNaN(dd):
		return "NaN", nil
	case math.IsInf(dd, 1):
		return "+" + c.InfinityText, nil
	case math.IsInf(dd, -1):
		return "-" + c.InfinityText, nil
	}
	if format == "" || format == "g" || format == "G" {
		format = strings.Replace(k.defaultFormat, ".", c.DecimalSeparator, 1)
	}
	format = strings.ReplaceAll(strings.ToUpper(format), "D", "H")
	segments := scanFormat(format, c.DecimalSeparator, k)

	fractional := 0
	absolute := false
	for _, s := range segments {
		if s.fractional {
			fractional++
		}
		if s.token == 'I' {
			absolute = true
		}
	}
	if fractional > 1 {
		return "", &FormatError{Input: format, Err: ErrFractionalPlacement}
	}

	parts := decompose(dd, k.precision)
	var b strings.Builder
	for _, s := range segments {
		switch s.token {
		case 0:
			b.WriteString(s.literal)
		case 'H':
			switch {
			case s.fractional && absolute:
				b.WriteString(formatNumber(math.Abs(dd), s, c))
			case s.fractional:
				b.WriteString(formatNumber(dd, s, c))
			case absolute:
				b.WriteString(formatNumber(float64(abs(parts.hours)), s, c))
			case parts.hours == 0 && dd < 0:
				// the sign would get lost with zero whole degrees
				b.WriteString("-" + formatNumber(0, s, c))
			default:
				b.WriteString(formatNumber(float64(parts.hours), s, c))
			}
		case 'M':
			if s.fractional {
				b.WriteString(formatNumber(parts.decimalMinutes, s, c))
			} else {
				b.WriteString(formatNumber(float64(parts.minutes), s, c))
			}
		case 'S':
			b.WriteString(formatNumber(parts.seconds, s, c))
		case 'C':
			d := directionOf(dd)
			if s.length == 1 {
				b.WriteString(d.Code())
			} else {
				b.WriteString(d.Name())
			}
		case 'I':
			h := k.hemisphereOf(dd)
			for i := 0; i < s.length/3; i++ {
				b.WriteString(h.String())
			}
			for i := 0; i < s.length%3; i++ {
				b.WriteString(h.Letter())
			}
		}
	}
	return b.String(), nil
}

func isToken(r rune, k kind) bool {
	switch r {
	case 'H', 'M', 'S':
		return true
	case 'C':
		return k.compass
	case 'I':
		return k.hasHemispheres()
	}
	return false
}

func scanFormat(format, separator string, k kind) []segment {
	var segments []segment
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{literal: literal.String()})
			literal.Reset()
		}
	}
	for i := 0; i < len(format); {
		r, size := utf8.DecodeRuneInString(format[i:])
		if !isToken(r, k) {
			literal.WriteString(format[i : i+size])
			i += size
			continue
		}
		flush()
		s := segment{token: r}
		for i < len(format) {
			if format[i] == byte(r) {
				if s.fractional {
					s.fracDigits++
				} else {
					s.intDigits++
				}
				s.length++
				i++
				continue
			}
			// a separator belongs to the run only when the run continues after it
			numeric := r == 'H' || r == 'M' || r == 'S'
			if numeric && !s.fractional && strings.HasPrefix(format[i:], separator) &&
				i+len(separator) < len(format) && format[i+len(separator)] == byte(r) {
				s.fractional = true
				i += len(separator)
				continue
			}
			break
		}
		segments = append(segments, s)
	}
	flush()
	return segments
}

// formatNumber renders v with at least intDigits whole digits and exactly
// fracDigits decimals, like a "00.000" numeric pattern.
func formatNumber(v float64, s segment, c *Culture) string {
	text := strconv.FormatFloat(math.Abs(v), 'f', s.fracDigits, 64)
	whole, fraction := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		whole, fraction = text[:i], text[i+1:]
	}
	if len(whole) < s.intDigits {
		whole = strings.Repeat("0", s.intDigits-len(whole)) + whole
	}
	if s.intDigits == 0 && whole == "0" && fraction != "" {
		whole = ""
	}
	out := whole
	if fraction != "" {
		out += c.DecimalSeparator + fraction
	}
	if v < 0 && strings.Trim(text, "0.") != "" {
		out = "-" + out
	}
	return out
}
