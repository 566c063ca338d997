package flowconfig

import (
	"encoding/xml"
	"io"
	"strconv"

	"github.com/juju/errors"
)

// LoadXML returns every flow-builder-services element in the document, in
// document order. Namespace prefixes are ignored, so both a bare
// <flow-builder-services> and <webflow:flow-builder-services> inside <beans>
// match. name labels Source positions.
func LoadXML(r io.Reader, name string) ([]Element, error) {
	dec := xml.NewDecoder(r)
	var out []Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Annotatef(err, "reading XML %s", name)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != ElementName {
			continue
		}
		line, _ := dec.InputPos()
		attrs := make(Attributes, len(se.Attr))
		for _, a := range se.Attr {
			if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
				continue
			}
			attrs[a.Name.Local] = a.Value
		}
		out = append(out, NewElement(attrs, name+":"+strconv.Itoa(line)))
	}
	logger.Tracef("found %d %s elements in %s", len(out), ElementName, name)
	return out, nil
}
