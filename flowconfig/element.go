package flowconfig

import "strings"

// ElementName is the local name of the configuration tag.
const ElementName = "flow-builder-services"

// Attribute names read from a flow-builder-services element.
const (
	AttrID                 = "id"
	AttrConversionService  = "conversion-service"
	AttrExpressionParser   = "expression-parser"
	AttrViewFactoryCreator = "view-factory-creator"
	AttrDevelopment        = "development"
)

// Attributes maps attribute names to their raw text.
type Attributes map[string]string

// Text returns the attribute value when it has text: present and not blank.
// The value is returned verbatim.
func (a Attributes) Text(name string) (string, bool) {
	v, ok := a[name]
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// Element is one flow-builder-services occurrence in a configuration document.
type Element struct {
	// ID is the element's id attribute, if any.
	ID string

	Attributes Attributes

	// Source locates the element for diagnostics ("file.xml:12").
	Source string
}

// NewElement builds an Element from attrs, lifting the id attribute.
func NewElement(attrs Attributes, source string) Element {
	if attrs == nil {
		attrs = Attributes{}
	}
	return Element{ID: strings.TrimSpace(attrs[AttrID]), Attributes: attrs, Source: source}
}
