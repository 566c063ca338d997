package flowconfig

import (
	"io"
	"strconv"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// LoadYAML reads flow-builder-services entries from a YAML document.
//
// The top-level key holds one mapping or a sequence of mappings:
//
//	flow-builder-services:
//	  - id: services
//	    conversion-service: conversionService
//	    development: true
//
// Scalars keep their literal text, so "development: true" yields "true".
// Null values count as absent.
func LoadYAML(r io.Reader, name string) ([]Element, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Annotatef(err, "decoding YAML %s", name)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("YAML %s: top level must be a mapping", name)
	}

	var entries *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == ElementName {
			entries = root.Content[i+1]
			break
		}
	}
	if entries == nil {
		return nil, nil
	}

	var nodes []*yaml.Node
	switch entries.Kind {
	case yaml.MappingNode:
		nodes = []*yaml.Node{entries}
	case yaml.SequenceNode:
		nodes = entries.Content
	default:
		return nil, errors.Errorf("YAML %s line %d: %s must be a mapping or a sequence", name, entries.Line, ElementName)
	}

	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		attrs, err := yamlAttributes(n, name)
		if err != nil {
			return nil, err
		}
		out = append(out, NewElement(attrs, name+":"+strconv.Itoa(n.Line)))
	}
	logger.Tracef("found %d %s entries in %s", len(out), ElementName, name)
	return out, nil
}

func yamlAttributes(n *yaml.Node, name string) (Attributes, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errors.Errorf("YAML %s line %d: %s entry must be a mapping", name, n.Line, ElementName)
	}
	attrs := make(Attributes, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return nil, errors.Errorf("YAML %s line %d: attribute %q must be a scalar", name, val.Line, key.Value)
		}
		if val.ShortTag() == "!!null" {
			continue
		}
		attrs[key.Value] = val.Value
	}
	return attrs, nil
}
