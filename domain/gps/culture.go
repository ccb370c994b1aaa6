package gps

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// Culture holds the numeric conventions used when parsing and formatting angles
type Culture struct {
	Name             string
	DecimalSeparator string
	GroupSeparator   string
	InfinityText     string
	EmptyText        string
}

var (
	// Invariant is the culture independent of any locale
	Invariant = &Culture{
		Name:             "",
		DecimalSeparator: ".",
		GroupSeparator:   ",",
		InfinityText:     "Infinity",
		EmptyText:        "Empty",
	}

	commaLanguages = map[string]bool{
		"de": true, "fr": true, "es": true, "it": true, "nl": true, "pt": true,
		"ru": true, "pl": true, "sv": true, "da": true, "fi": true, "nb": true,
		"no": true, "cs": true, "sk": true, "tr": true, "el": true, "hu": true,
		"ro": true, "uk": true, "bg": true, "hr": true, "sl": true, "id": true,
	}
	groupForComma = map[string]string{
		"fr": " ", "ru": " ", "pl": " ", "sv": " ",
		"fi": " ", "nb": " ", "no": " ", "cs": " ",
		"sk": " ", "uk": " ", "bg": " ",
	}
)

// CultureFor returns the conventions of the given language
func CultureFor(tag language.Tag) *Culture {
	if tag == language.Und {
		return Invariant
	}
	base, _ := tag.Base()
	c := &Culture{
		Name:             tag.String(),
		DecimalSeparator: ".",
		GroupSeparator:   ",",
		InfinityText:     Invariant.InfinityText,
		EmptyText:        Invariant.EmptyText,
	}
	if commaLanguages[base.String()] {
		c.DecimalSeparator = ","
		c.GroupSeparator = "."
		if g, found := groupForComma[base.String()]; found {
			c.GroupSeparator = g
		}
	}
	return c
}

// ParseCulture resolves a BCP 47 name such as "de-CH" or "en_US.UTF-8".
// An empty name returns the invariant culture.
func ParseCulture(name string) (*Culture, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Invariant, nil
	}
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	name = strings.ReplaceAll(name, "_", "-")
	if name == "C" || name == "POSIX" {
		return Invariant, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return nil, err
	}
	return CultureFor(tag), nil
}

// CurrentCulture derives the culture of the process from the locale environment
func CurrentCulture() *Culture {
	for _, env := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		if v := os.Getenv(env); v != "" {
			if c, err := ParseCulture(v); err == nil {
				return c
			}
		}
	}
	return Invariant
}

func cultureOrCurrent(c *Culture) *Culture {
	if c == nil {
		return CurrentCulture()
	}
	return c
}

func (c *Culture) toInvariant(s string) string {
	if c.GroupSeparator != "" && c.GroupSeparator != c.DecimalSeparator {
		s = strings.ReplaceAll(s, c.GroupSeparator, "")
	}
	if c.DecimalSeparator == "." {
		return s
	}
	return strings.Replace(s, c.DecimalSeparator, ".", 1)
}

// ParseFloat parses a number written with the culture's decimal separator.
// Group separators are ignored, "1.234,5" is 1234.5 for a German culture.
func (c *Culture) ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(c.toInvariant(strings.TrimSpace(s)), 64)
}

// ParseInt parses a whole number, a leading '+' is allowed
func (c *Culture) ParseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
}

func (c *Culture) hasDecimal(s string) bool {
	return strings.Contains(s, c.DecimalSeparator)
}
