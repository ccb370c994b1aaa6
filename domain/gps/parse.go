package gps

import (
	"math"
	"strings"
)

var delimiters = strings.NewReplacer("°", " ", "º", " ", "'", " ", "\"", " ", "′", " ", "″", " ")

// parseDegrees turns free-form text into decimal degrees. The result is never
// normalized: "400" parsed as an azimuth stays 400.
func parseDegrees(value string, c *Culture, k kind) (float64, error) {
	c = cultureOrCurrent(c)
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, nil
	}
	// sentinels first, "Infinity" and "Empty" both contain hemisphere letters
	if dd, found := parseSentinel(s, c); found {
		return dd, nil
	}
	if k.compass {
		if d, found := ParseDirection(s); found {
			return d.Azimuth().DecimalDegrees(), nil
		}
	}
	hemisphere := HemisphereNone
	if k.hasHemispheres() {
		s, hemisphere = extractHemisphere(s, k)
	}
	tokens := strings.Fields(delimiters.Replace(s))
	if len(tokens) == 0 {
		return 0, nil
	}
	if hemisphere == HemisphereNone && strings.HasPrefix(tokens[0], "-") && k.hasHemispheres() {
		hemisphere = k.negative
	}
	var dd float64
	var err error
	switch len(tokens) {
	case 1:
		dd, err = parseSingle(tokens[0], c)
		if err == nil && hemisphere != HemisphereNone {
			dd = combine(hemisphere.negative(), 0, math.Abs(dd))
		}
	case 2:
		dd, err = parseDegreesMinutes(tokens[0], tokens[1], c, hemisphere)
	default:
		dd, err = parseDegreesMinutesSeconds(tokens[0], tokens[1], tokens[2], c, hemisphere)
	}
	if err != nil {
		return 0, formatError(value, err)
	}
	return dd, nil
}

func parseSentinel(s string, c *Culture) (float64, bool) {
	switch {
	case strings.EqualFold(s, c.InfinityText), strings.EqualFold(s, "+"+c.InfinityText):
		return math.Inf(1), true
	case strings.EqualFold(s, "-"+c.InfinityText):
		return math.Inf(-1), true
	case strings.EqualFold(s, c.EmptyText):
		return 0, true
	case s == "NaN":
		return math.NaN(), true
	}
	return 0, false
}

// extractHemisphere removes a hemisphere word or letter from s. An 'E'
// directly followed by '-' is an exponent, not East.
func extractHemisphere(s string, k kind) (string, Hemisphere) {
	upper := strings.ToUpper(s)
	for _, h := range []Hemisphere{k.positive, k.negative} {
		word := strings.ToUpper(h.String())
		if i := strings.Index(upper, word); i >= 0 {
			return s[:i] + " " + s[i+len(word):], h
		}
	}
	for i := 0; i < len(upper); i++ {
		var h Hemisphere
		switch upper[i] {
		case k.positive.Letter()[0]:
			h = k.positive
		case k.negative.Letter()[0]:
			h = k.negative
		default:
			continue
		}
		if h == HemisphereEast && i+1 < len(s) && s[i+1] == '-' {
			continue
		}
		return s[:i] + " " + s[i+1:], h
	}
	return s, HemisphereNone
}

func parseSingle(token string, c *Culture) (float64, error) {
	if dd, found := parseSentinel(token, c); found {
		return dd, nil
	}
	if isFixedWidth(token, c) {
		width := 3
		if len(token) == 8 {
			width = 4
		}
		return parseDegreesMinutesSeconds(token[:width], token[width:width+2], token[width+2:], c, HemisphereNone)
	}
	return c.ParseFloat(token)
}

// isFixedWidth reports whether token is HHHMMSS, or -HHHMMSS
func isFixedWidth(token string, c *Culture) bool {
	digits := token
	switch {
	case len(token) == 8 && token[0] == '-':
		digits = token[1:]
	case len(token) != 7:
		return false
	}
	if c.hasDecimal(token) {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

func parseDegreesMinutes(hoursToken, minutesToken string, c *Culture, h Hemisphere) (float64, error) {
	if c.hasDecimal(hoursToken) {
		return 0, ErrFractionalPlacement
	}
	hours, err := c.ParseInt(hoursToken)
	if err != nil {
		return 0, err
	}
	decimalMinutes, err := c.ParseFloat(minutesToken)
	if err != nil {
		return 0, err
	}
	if h == HemisphereNone {
		return combine(strings.HasPrefix(hoursToken, "-"), abs(hours), math.Abs(decimalMinutes)/60), nil
	}
	return ToDecimalDegreesDMHemisphere(hours, decimalMinutes, h), nil
}

func parseDegreesMinutesSeconds(hoursToken, minutesToken, secondsToken string, c *Culture, h Hemisphere) (float64, error) {
	if c.hasDecimal(hoursToken) || c.hasDecimal(minutesToken) {
		return 0, ErrFractionalPlacement
	}
	hours, err := c.ParseInt(hoursToken)
	if err != nil {
		return 0, err
	}
	minutes, err := c.ParseInt(minutesToken)
	if err != nil {
		return 0, err
	}
	seconds, err := c.ParseFloat(secondsToken)
	if err != nil {
		return 0, err
	}
	if h == HemisphereNone {
		return combine(strings.HasPrefix(hoursToken, "-"), abs(hours), math.Abs(float64(minutes))/60+math.Abs(seconds)/3600), nil
	}
	return ToDecimalDegreesHemisphere(hours, minutes, seconds, h), nil
}
