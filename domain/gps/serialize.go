package gps

import (
	"bytes"
	"encoding/xml"
	"io"
	"io/ioutil"
	"strings"
)

func decodeXMLDegrees(d *xml.Decoder, start xml.StartElement) (float64, error) {
	var text string
	if err := d.DecodeElement(&text, &start); err != nil {
		return 0, err
	}
	return parseG17(strings.TrimSpace(text))
}

// WriteXML writes the angle as a single element holding its round-trip text
func WriteXML(w io.Writer, name string, a Angle) error {
	enc := xml.NewEncoder(w)
	if err := enc.EncodeElement(formatG17(a.DecimalDegrees()), xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
		return err
	}
	return enc.Flush()
}

// ReadXML reads decimal degrees written by WriteXML. A bare text node
// without an enclosing element is accepted as well.
func ReadXML(r io.Reader) (float64, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return 0, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '<' {
		return parseG17(string(data))
	}
	d := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := d.Token()
		if err != nil {
			return 0, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return decodeXMLDegrees(d, start)
		}
	}
}
